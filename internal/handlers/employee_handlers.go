package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/broker"
	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/repository"
	"github.com/Werneck0live/office-admin/internal/utils"
)

type EmployeeRepository interface {
	GetAll(ctx context.Context, limit, skip int64) ([]models.BuildingEmployee, error)
	Create(ctx context.Context, e *models.BuildingEmployee) (models.EmployeeID, error)
	GetByID(ctx context.Context, id models.EmployeeID) (*models.BuildingEmployee, error)
	Update(ctx context.Context, id models.EmployeeID, fields bson.M) (*models.BuildingEmployee, error)
	Replace(ctx context.Context, id models.EmployeeID, doc *models.BuildingEmployee) error
	Delete(ctx context.Context, id models.EmployeeID) error
}

type Notifier interface {
	Notify(ctx context.Context, action, entityID, entityName string)
}

const requestTimeout = 5 * time.Second

type EmployeeHandler struct {
	Repo   EmployeeRepository
	Events Notifier // opcional
	Log    *slog.Logger
}

func NewEmployeeHandler(repo EmployeeRepository, events Notifier) *EmployeeHandler {
	return &EmployeeHandler{Repo: repo, Events: events, Log: slog.Default().With("cmp", "handlers.employees")}
}

// garante que a requisição venha no padrão /api/{resource}/{id}
func parseIDFromPath(path, resource string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 3 && parts[0] == "api" && parts[1] == resource && parts[2] != "" {
		return parts[2], true
	}
	return "", false
}

func Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *EmployeeHandler) Employees(w http.ResponseWriter, r *http.Request) {
	switch r.Method {

	// lista paginada (skip, limit)
	case http.MethodGet:
		q := r.URL.Query()
		limit := int64(50)
		skip := int64(0)
		if l := q.Get("limit"); l != "" {
			if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 && v <= 200 {
				limit = v
			}
		}
		if s := q.Get("skip"); s != "" {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil && v >= 0 {
				skip = v
			}
		}
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		list, err := h.Repo.GetAll(ctx, limit, skip)
		if err != nil {
			h.internalError(w, "list", err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, list)

	case http.MethodPost:
		var dto EmployeeCreateDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validateCreateDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		e := dto.model()
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		if _, err := h.Repo.Create(ctx, &e); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				utils.WriteError(w, http.StatusConflict, "duplicate key")
				return
			}
			h.internalError(w, "create", err)
			return
		}

		h.notify(r.Context(), broker.ActionEmployeeCreated, &e)
		utils.WriteJSON(w, http.StatusCreated, e)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *EmployeeHandler) EmployeeByID(w http.ResponseWriter, r *http.Request) {
	raw, ok := parseIDFromPath(r.URL.Path, "employees")
	if !ok {
		utils.NotFound(w)
		return
	}
	// id malformado é tratado como inexistente
	id, err := models.ParseID[models.BuildingEmployee](raw)
	if err != nil {
		utils.NotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	switch r.Method {
	case http.MethodGet:
		e, err := h.Repo.GetByID(ctx, id)
		if err != nil {
			h.lookupError(w, "get", err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, e)

	case http.MethodPatch:
		var dto EmployeePatchDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validatePatchDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		e, err := h.Repo.Update(ctx, id, dto.fields())
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				utils.WriteError(w, http.StatusConflict, "duplicate key")
				return
			}
			h.lookupError(w, "patch", err)
			return
		}
		h.notify(r.Context(), broker.ActionEmployeeUpdated, e)
		utils.WriteJSON(w, http.StatusOK, e)

	case http.MethodPut:
		var dto EmployeePutDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validateCreateDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		// documento COMPLETO que substitui o atual, mesmo _id
		doc := dto.model()
		if err := h.Repo.Replace(ctx, id, &doc); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				utils.WriteError(w, http.StatusConflict, "duplicate key")
				return
			}
			h.lookupError(w, "put", err)
			return
		}
		doc.ID = id
		h.notify(r.Context(), broker.ActionEmployeeUpdated, &doc)
		utils.WriteJSON(w, http.StatusOK, doc)

	case http.MethodDelete:
		// busca antes pra ter o nome no evento
		e, err := h.Repo.GetByID(ctx, id)
		if err != nil {
			h.lookupError(w, "delete", err)
			return
		}
		if err := h.Repo.Delete(ctx, id); err != nil {
			h.lookupError(w, "delete", err)
			return
		}
		h.notify(r.Context(), broker.ActionEmployeeDeleted, e)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *EmployeeHandler) notify(ctx context.Context, action string, e *models.BuildingEmployee) {
	if h.Events == nil || e == nil {
		return
	}
	h.Events.Notify(context.WithoutCancel(ctx), action, e.ID.Hex(), e.FullName)
}

func (h *EmployeeHandler) lookupError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.NotFound(w)
		return
	}
	h.internalError(w, op, err)
}

func (h *EmployeeHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger().Error("employee_"+op+"_error", "err", err)
	utils.WriteError(w, http.StatusInternalServerError, err.Error())
}

func (h *EmployeeHandler) logger() *slog.Logger {
	if h.Log == nil {
		return slog.Default()
	}
	return h.Log
}
