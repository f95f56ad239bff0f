// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../oidc/oidc_iface.go -destination mock_oidc/mock_oidc_iface.go
//go:generate mockgen -source ../storage/storage_iface.go -destination mock_storage/mock_storage_iface.go
//go:generate mockgen -source ../audit/audit.go -destination mock_audit/mock_audit.go
//go:generate mockgen -source ../auth_iface.go -destination mock_auth/mock_auth_iface.go
//go:generate mockgen -package auth -source ../cookies.go -destination ../mock_cookies_test.go
