// File: handlers/bundle.go
package handlers

// HandlerBundle groups every handler the route table needs, assembled once in
// main and handed to routes.RegisterRoutes.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Template     *TemplateHandler
	Link         *LinkHandler
}
