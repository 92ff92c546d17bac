package api

import (
	"github.com/khushprajapati/portfolio-backend/auth"
	"github.com/khushprajapati/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(
	verifier auth.CredentialVerifier,
	projects ProjectStore,
	skills SkillStore,
	messages MessageStore,
	dispatcher services.Dispatcher,
) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(verifier),
		projectHandler: newProjectHandler(projects),
		skillHandler:   newSkillHandler(skills),
		contactHandler: newContactHandler(messages, dispatcher),
		messageHandler: newMessageHandler(messages),
	}
}
