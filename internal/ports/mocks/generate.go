//go:generate mockgen -source=../cart_repository.go     -destination=./mock_cart_repository.go     -package=mocks
//go:generate mockgen -source=../settings_repository.go -destination=./mock_settings_repository.go -package=mocks
//go:generate mockgen -source=../order_gateway.go       -destination=./mock_order_gateway.go       -package=mocks
//go:generate mockgen -source=../order_cache.go         -destination=./mock_order_cache.go         -package=mocks
//go:generate mockgen -source=../snapshot_validator.go  -destination=./mock_snapshot_validator.go  -package=mocks
//go:generate mockgen -source=../accessibility_gateway.go -destination=./mock_accessibility_gateway.go -package=mocks
//go:generate mockgen -source=../review_gateway.go      -destination=./mock_review_gateway.go      -package=mocks
//go:generate mockgen -source=../contact_gateway.go     -destination=./mock_contact_gateway.go     -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks

package mocks
