package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/khushprajapati/portfolio-backend/errs"
	"github.com/khushprajapati/portfolio-backend/models"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    SkillStore
}

func newSkillHandler(skills SkillStore) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skills:    skills,
	}
}

// skillInput is the request schema for skill mutations; pointers carry the
// absent-versus-empty distinction for partial updates.
type skillInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
	Icon     *string `json:"icon"`
	Order    *int    `json:"order"`
}

func (h skillHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*skillInput, bool) {
	var input skillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode skill request body")
		h.responder.WriteError(w, errs.NewInvalidJSONError(err))
		return nil, false
	}
	return &input, true
}

func (h skillHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "skillID")
	if idStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing skillID"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
		return uuid.Nil, false
	}
	return id, true
}

func validLevel(level int) bool {
	return level >= 1 && level <= 10
}

// listSkills returns every skill ordered by category, order, name. Public route.
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skills.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		if skills == nil {
			skills = []*models.Skill{}
		}
		h.responder.WriteData(w, http.StatusOK, skills)
	}
}

// createSkill adds a skill. A duplicate name fails with 409 through the
// storage layer's unique constraint; the original record is left untouched.
// Admin route.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		if input.Name == nil || *input.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if input.Category == nil || *input.Category == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		}

		level := models.DefaultSkillLevel
		if input.Level != nil {
			if !validLevel(*input.Level) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("level", "must be between 1 and 10"))
				return
			}
			level = *input.Level
		}

		order := 0
		if input.Order != nil {
			order = *input.Order
		} else {
			nextOrder, err := h.skills.NextOrder()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("order", "skill", err))
				return
			}
			order = nextOrder
		}

		skill := &models.Skill{
			ID:       uuid.New(),
			Name:     *input.Name,
			Category: *input.Category,
			Level:    level,
			Icon:     input.Icon,
			Order:    order,
		}

		if err := h.skills.Add(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, skill)
	}
}

// updateSkill applies a partial update to a skill. Admin route.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		skill, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		if input.Name != nil && *input.Name != "" {
			skill.Name = *input.Name
		}
		if input.Category != nil && *input.Category != "" {
			skill.Category = *input.Category
		}
		if input.Level != nil {
			if !validLevel(*input.Level) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("level", "must be between 1 and 10"))
				return
			}
			skill.Level = *input.Level
		}
		if input.Icon != nil {
			skill.Icon = input.Icon
		}
		if input.Order != nil {
			skill.Order = *input.Order
		}

		if err := h.skills.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, skill)
	}
}

// deleteSkill removes a skill by ID. Admin route.
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		skill, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		if err := h.skills.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Skill deleted successfully", nil)
	}
}
