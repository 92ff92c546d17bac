package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khushprajapati/portfolio-backend/errs"
	"github.com/khushprajapati/portfolio-backend/models"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newProjectHandler(projects ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// projectInput is the request schema for project mutations. Pointer fields
// distinguish an absent field from an explicit empty one, which is what makes
// partial updates possible.
type projectInput struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	Tech            *[]string `json:"tech"`
	Github          *string   `json:"github"`
	Demo            *string   `json:"demo"`
	Features        *[]string `json:"features"`
	Image           *string   `json:"image"`
	Published       *bool     `json:"published"`
}

// projectView is the presentation shape the frontend consumes: the content
// string re-split into longDescription plus a features array, links flattened
// to empty strings.
type projectView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Tech            []string  `json:"tech"`
	Image           string    `json:"image"`
	Github          string    `json:"github"`
	Demo            string    `json:"demo"`
	Features        []string  `json:"features"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func viewOfProject(p *models.Project) projectView {
	view := projectView{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Description:     p.Description,
		LongDescription: p.LongDescription(),
		Tech:            p.Tech,
		Image:           p.Image,
		Features:        p.Features(),
		Published:       p.Published,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if view.Tech == nil {
		view.Tech = []string{}
	}
	if p.Github != nil {
		view.Github = *p.Github
	}
	if p.Demo != nil {
		view.Demo = *p.Demo
	}
	return view
}

func (h projectHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*projectInput, bool) {
	var input projectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode project request body")
		h.responder.WriteError(w, errs.NewInvalidJSONError(err))
		return nil, false
	}
	return &input, true
}

func (h projectHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "projectID")
	if idStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return uuid.Nil, false
	}
	return id, true
}

// listProjects returns the published catalog, newest first. Public route.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		views := make([]projectView, 0, len(projects))
		for _, project := range projects {
			views = append(views, viewOfProject(project))
		}

		h.responder.WriteData(w, http.StatusOK, views)
	}
}

// createProject creates a new published project. Admin route.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		if input.Title == nil || *input.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if input.Description == nil || *input.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		longDescription := *input.Description
		if input.LongDescription != nil && *input.LongDescription != "" {
			longDescription = *input.LongDescription
		}
		var features []string
		if input.Features != nil {
			features = *input.Features
		}

		project := &models.Project{
			ID:          uuid.New(),
			Title:       *input.Title,
			Slug:        models.Slugify(*input.Title),
			Description: *input.Description,
			Content:     models.BuildContent(longDescription, features),
			Tech:        []string{},
			Image:       models.DefaultProjectImage,
			Published:   true,
		}
		if input.Tech != nil {
			project.Tech = *input.Tech
		}
		if input.Image != nil && *input.Image != "" {
			project.Image = *input.Image
		}
		if input.Github != nil {
			project.Github = input.Github
		}
		if input.Demo != nil {
			project.Demo = input.Demo
		}

		if err := h.projects.Add(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, viewOfProject(project))
	}
}

// updateProject applies a partial update: only fields present in the body
// overwrite stored values. A title change recomputes the slug; supplying
// features rebuilds the content from the current long description. Admin route.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		if input.Title != nil && *input.Title != "" {
			project.Title = *input.Title
			project.Slug = models.Slugify(*input.Title)
		}
		if input.Description != nil && *input.Description != "" {
			project.Description = *input.Description
		}

		longDescription := project.LongDescription()
		if input.LongDescription != nil && *input.LongDescription != "" {
			longDescription = *input.LongDescription
		}
		if input.LongDescription != nil || input.Features != nil {
			features := project.Features()
			if input.Features != nil {
				features = *input.Features
			}
			project.Content = models.BuildContent(longDescription, features)
		}

		if input.Tech != nil {
			project.Tech = *input.Tech
		}
		if input.Image != nil && *input.Image != "" {
			project.Image = *input.Image
		}
		if input.Github != nil {
			project.Github = input.Github
		}
		if input.Demo != nil {
			project.Demo = input.Demo
		}
		if input.Published != nil {
			project.Published = *input.Published
		}

		if err := h.projects.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, viewOfProject(project))
	}
}

// deleteProject removes a project by ID. Admin route.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Project deleted successfully", nil)
	}
}
