package handlers

import (
	userRepo "servease/database/repository/user"
)

// HandlerBundle aggregates the handlers and repositories the router needs.
type HandlerBundle struct {
	// UserRepo backs the auth middlewares.
	UserRepo userRepo.UserRepository

	UserHandler    *UserHandler
	ServiceHandler *ServiceHandler
	BookingHandler *BookingHandler
	AdminHandler   *AdminHandler
	ChatbotHandler *ChatbotHandler
}
