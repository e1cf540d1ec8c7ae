package handlers

// AppHandlers groups the wired handlers for route registration.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	GalleryHandler *GalleryHandler
	ContactHandler *ContactHandler
	MediaHandler   *MediaHandler
	AdminHandler   *AdminHandler
}
