package partyapi

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/app/server/store"
)

type Handler struct {
	store      *store.Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st *store.Store, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.sympathizersOp(), h.sympathizers)
	huma.Register(api, h.membersOp(), h.members)
	huma.Register(api, h.personOp(), h.person)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) list(_ context.Context, input *listInput) (*listOutput, error) {
	size := input.PageSize
	if size <= 0 {
		size = 25
	}
	index := input.PageIndex
	if index <= 0 {
		index = 1
	}

	items, count, pages := h.store.ListPage(index, size)

	return &listOutput{
		Body: ListResponse{Items: items, Index: index, Size: size, Count: count, Pages: pages},
	}, nil
}

func (h *Handler) sympathizers(_ context.Context, _ *emptyInput) (*peopleOutput, error) {
	return &peopleOutput{Body: h.store.Sympathizers()}, nil
}

func (h *Handler) members(_ context.Context, _ *emptyInput) (*peopleOutput, error) {
	return &peopleOutput{Body: h.store.OrganizationMembers()}, nil
}

func (h *Handler) person(_ context.Context, input *personInput) (*personOutput, error) {
	p, ok := h.store.Person(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("BusinessException: Kişi bulunamadı.")
	}
	return &personOutput{Body: p}, nil
}

func (h *Handler) update(_ context.Context, input *updateInput) (*personOutput, error) {
	upd := store.PersonUpdate{
		FullName:    input.Body.FullName,
		PhoneNumber: input.Body.PhoneNumber,
		Path:        input.Body.Path,
		BirthDate:   input.Body.BirthDate,
		Address:     input.Body.Address,
		District:    input.Body.District,
		Notes:       input.Body.Notes,
	}

	p, err := h.store.UpdatePerson(input.Body.ID, upd)
	if err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			return nil, huma.Error404NotFound("BusinessException: Kişi bulunamadı.")
		}
		return nil, huma.Error500InternalServerError("güncelleme başarısız")
	}

	return &personOutput{Body: p}, nil
}
