package backend_mocks

//go:generate mockgen -source=../interfaces.go -destination=backend_mocks.go -package=backend_mocks

// To regenerate the mocks, run:
//   go generate ./internal/backend/backend_mocks
