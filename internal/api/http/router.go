package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/api/http/handlers"
	"github.com/spec-kit/isp-registry/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Clients        *handlers.ClientsHandler
	Vendors        *handlers.VendorsHandler
	Services       *handlers.ServicesHandler
	Contacts       *handlers.ContactsHandler
	Addresses      *handlers.AddressesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/token", cfg.Users.Login)

	read := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireScopes(auth.ReadScopes...))
	read.Get("/clients", cfg.Clients.ListClients)
	read.Get("/client-types", cfg.Clients.ListClientTypes)
	read.Get("/vendors", cfg.Vendors.ListVendors)
	read.Get("/pops", cfg.Vendors.ListPops)
	read.Get("/services", cfg.Services.SearchServices)
	read.Get("/service-types", cfg.Services.ListServiceTypes)
	read.Get("/contacts", cfg.Contacts.SearchContacts)
	read.Get("/addresses", cfg.Addresses.SearchAddresses)

	write := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireScopes(auth.WriteScopes...))
	write.Post("/client-type", cfg.Clients.CreateClientType)
	write.Delete("/client-type/:id", cfg.Clients.DeleteClientType)
	write.Post("/client", cfg.Clients.CreateClient)
	write.Put("/client", cfg.Clients.UpdateClient)
	write.Delete("/client/:id", cfg.Clients.DeleteClient)

	write.Post("/vendor", cfg.Vendors.CreateVendor)
	write.Put("/vendor", cfg.Vendors.UpdateVendor)
	write.Delete("/vendor/:id", cfg.Vendors.DeleteVendor)
	write.Post("/pop", cfg.Vendors.CreatePop)
	write.Put("/pop", cfg.Vendors.UpdatePop)
	write.Delete("/pop/:id", cfg.Vendors.DeletePop)

	write.Post("/service-type", cfg.Services.CreateServiceType)
	write.Delete("/service-type/:id", cfg.Services.DeleteServiceType)
	write.Post("/service", cfg.Services.CreateService)
	write.Put("/service", cfg.Services.UpdateService)
	write.Delete("/service/:id", cfg.Services.DeleteService)

	write.Post("/contact", cfg.Contacts.CreateContact)
	write.Put("/contact", cfg.Contacts.UpdateContact)
	write.Delete("/contact/:id", cfg.Contacts.DeleteContact)

	write.Post("/address", cfg.Addresses.CreateAddress)
	write.Put("/address", cfg.Addresses.UpdateAddress)
	write.Delete("/address/:id", cfg.Addresses.DeleteAddress)

	admin := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireScopes(auth.AdminScopes...))
	admin.Post("/user", cfg.Users.CreateUser)
	admin.Put("/user", cfg.Users.UpdateUser)
	admin.Put("/user/password", cfg.Users.ChangePassword)
	admin.Get("/users", cfg.Users.ListUsers)
	admin.Delete("/user/:id", cfg.Users.DeleteUser)
}
