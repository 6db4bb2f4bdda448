package app

import (
	"github.com/robfig/cron/v3"

	"github.com/gi-os/ShopTemplateSystem/config"
	"github.com/gi-os/ShopTemplateSystem/internal/access"
	"github.com/gi-os/ShopTemplateSystem/internal/cart"
	"github.com/gi-os/ShopTemplateSystem/internal/catalog"
	"github.com/gi-os/ShopTemplateSystem/internal/design"
	"github.com/gi-os/ShopTemplateSystem/internal/orders"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// CatalogProvider provides the catalog read model
type CatalogProvider interface {
	Catalog() *catalog.Repository
}

// DesignProvider provides the design read model
type DesignProvider interface {
	Design() *design.Repository
}

// OrdersProvider provides order capture
type OrdersProvider interface {
	Orders() *orders.Store
}

// CartProvider provides the cart store
type CartProvider interface {
	Cart() cart.Store
}

// AccessProvider provides the password gate
type AccessProvider interface {
	Gate() *access.Gate
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces. Handlers depend on the
// specific providers they need, or on this combined interface.
type AppContext interface {
	ConfigProvider
	CatalogProvider
	DesignProvider
	OrdersProvider
	CartProvider
	AccessProvider
	SchedulerProvider
}
