package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/season --output domain/season --outpkg seasonmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/match --output domain/match --outpkg matchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/availability --output domain/availability --outpkg availabilitymock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SeasonRepository --dir ../domain/availability --output domain/availability --outpkg availabilitymock --filename season_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/selection --output domain/selection --outpkg selectionmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/fielding --output domain/fielding --outpkg fieldingmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/scorecard --output domain/scorecard --outpkg scorecardmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TokenVerifier --dir ../domain/admin --output domain/admin --outpkg adminmock --filename token_verifier_mock.go
