package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/player"
	"github.com/riskibarqy/cricket-team/internal/domain/season"
	basecache "github.com/riskibarqy/cricket-team/internal/platform/cache"
)

const (
	seasonPrefix = "season:"
	playerPrefix = "player:"
	matchPrefix  = "match:"
)

// lookupResult keeps a miss cacheable.
type lookupResult[T any] struct {
	Value  T    `json:"value"`
	Exists bool `json:"exists"`
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	items, err := basecache.GetOrLoad(ctx, r.cache, seasonPrefix+"list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (season.Season, bool, error) {
	out, err := basecache.GetOrLoad(ctx, r.cache, seasonPrefix+"id:"+id, func(ctx context.Context) (lookupResult[season.Season], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		return lookupResult[season.Season]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return season.Season{}, false, err
	}
	return out.Value, out.Exists, nil
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	out, err := basecache.GetOrLoad(ctx, r.cache, seasonPrefix+"active", func(ctx context.Context) (lookupResult[season.Season], error) {
		item, exists, err := r.next.GetActive(ctx)
		return lookupResult[season.Season]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return season.Season{}, false, err
	}
	return out.Value, out.Exists, nil
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) error {
	defer invalidate(ctx, r.cache, seasonPrefix)()
	return r.next.Create(ctx, s)
}

func (r *SeasonRepository) Activate(ctx context.Context, id string) (bool, error) {
	defer invalidate(ctx, r.cache, seasonPrefix)()
	return r.next.Activate(ctx, id)
}

func (r *SeasonRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	defer invalidate(ctx, r.cache, seasonPrefix)()
	return r.next.SoftDelete(ctx, id)
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := basecache.GetOrLoad(ctx, r.cache, playerPrefix+"list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	out, err := basecache.GetOrLoad(ctx, r.cache, playerPrefix+"id:"+id, func(ctx context.Context) (lookupResult[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		return lookupResult[player.Player]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return out.Value, out.Exists, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []string) ([]player.Player, error) {
	if len(ids) == 0 {
		return []player.Player{}, nil
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	items, err := basecache.GetOrLoad(ctx, r.cache, playerPrefix+"ids:"+strings.Join(sorted, ","), func(ctx context.Context) ([]player.Player, error) {
		return r.next.GetByIDs(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	return basecache.GetOrLoad(ctx, r.cache, playerPrefix+"count", r.next.Count)
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	defer invalidate(ctx, r.cache, playerPrefix)()
	return r.next.Create(ctx, p)
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	defer invalidate(ctx, r.cache, playerPrefix)()
	return r.next.Update(ctx, p)
}

func (r *PlayerRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	defer invalidate(ctx, r.cache, playerPrefix)()
	return r.next.SoftDelete(ctx, id)
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

// List caches only filters without a moving lower date bound.
func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	if !filter.DateFrom.IsZero() {
		return r.next.List(ctx, filter)
	}

	items, err := basecache.GetOrLoad(ctx, r.cache, matchPrefix+"list:"+matchFilterKey(filter), func(ctx context.Context) ([]match.Match, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	out, err := basecache.GetOrLoad(ctx, r.cache, matchPrefix+"id:"+id, func(ctx context.Context) (lookupResult[match.Match], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		return lookupResult[match.Match]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return out.Value, out.Exists, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	defer invalidate(ctx, r.cache, matchPrefix)()
	return r.next.Create(ctx, m)
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	defer invalidate(ctx, r.cache, matchPrefix)()
	return r.next.Update(ctx, m)
}

func (r *MatchRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	defer invalidate(ctx, r.cache, matchPrefix)()
	return r.next.SoftDelete(ctx, id)
}

func (r *MatchRepository) LockDue(ctx context.Context, cutoff time.Time) (int, error) {
	locked, err := r.next.LockDue(ctx, cutoff)
	if locked > 0 {
		r.cache.DeletePrefix(ctx, matchPrefix)
	}
	return locked, err
}

// invalidate drops prefix now and again from the returned func, so entries
// loaded while a write is in flight do not outlive it. A load that read the
// old rows and stores them after the second drop still expires with the TTL.
func invalidate(ctx context.Context, store *basecache.Store, prefix string) func() {
	store.DeletePrefix(ctx, prefix)
	return func() { store.DeletePrefix(ctx, prefix) }
}

func matchFilterKey(f match.Filter) string {
	parts := []string{
		f.SeasonID,
		string(f.Status),
		f.Type,
		strconv.FormatBool(f.Descending),
		strconv.Itoa(f.Limit),
	}
	return strings.Join(parts, "|")
}
