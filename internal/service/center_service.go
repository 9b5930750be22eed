package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hawkerhero/internal/auth"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

// CenterInput is the admin hawker center form.
type CenterInput struct {
	Name       string `form:"name" validate:"required,max=255"`
	Address    string `form:"address" validate:"required,max=255"`
	Facilities string `form:"facilities"`
	ImageURL   string `form:"-"`
}

var centerMessages = Messages{
	"required": "Name and address are required.",
}

// CenterDetail is a hawker center with the stalls located in it.
type CenterDetail struct {
	Center model.HawkerCenter
	Stalls []model.Stall
}

// HawkerCenterService handles hawker center browsing and admin management.
type HawkerCenterService interface {
	List(ctx context.Context, f repository.CenterFilter, page repository.Page) (*repository.Result[model.CenterRow], error)
	Get(ctx context.Context, id uint) (*CenterDetail, error)
	Find(ctx context.Context, id uint) (*model.HawkerCenter, error)
	Create(ctx context.Context, actor *model.Identity, in CenterInput) (*model.HawkerCenter, error)
	Update(ctx context.Context, actor *model.Identity, id uint, in CenterInput) (*model.HawkerCenter, error)
	Delete(ctx context.Context, actor *model.Identity, id uint) error
	Options(ctx context.Context) ([]model.Option, error)
}

type hawkerCenterService struct {
	centers repository.HawkerCenterRepository
	stalls  repository.StallRepository
	cache   StallCache
}

// StallCache drops cached stall details. StallService satisfies it.
type StallCache interface {
	Invalidate(ctx context.Context, ids ...uint)
}

// NewHawkerCenterService creates a new hawker center service.
func NewHawkerCenterService(centers repository.HawkerCenterRepository, stalls repository.StallRepository, cache StallCache) HawkerCenterService {
	return &hawkerCenterService{
		centers: centers,
		stalls:  stalls,
		cache:   cache,
	}
}

func (s *hawkerCenterService) List(ctx context.Context, f repository.CenterFilter, page repository.Page) (*repository.Result[model.CenterRow], error) {
	res, err := s.centers.List(ctx, f, page)
	if err != nil {
		return nil, fmt.Errorf("list hawker centers: %w", err)
	}
	return res, nil
}

func (s *hawkerCenterService) Get(ctx context.Context, id uint) (*CenterDetail, error) {
	center, err := s.centers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("get hawker center", err)
	}
	stalls, err := s.stalls.FindByCenter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list center stalls: %w", err)
	}
	return &CenterDetail{Center: *center, Stalls: stalls}, nil
}

func (s *hawkerCenterService) Find(ctx context.Context, id uint) (*model.HawkerCenter, error) {
	center, err := s.centers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("find hawker center", err)
	}
	return center, nil
}

func (s *hawkerCenterService) Create(ctx context.Context, actor *model.Identity, in CenterInput) (*model.HawkerCenter, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.check(&in); err != nil {
		return nil, err
	}
	center := &model.HawkerCenter{
		Name:       in.Name,
		Address:    in.Address,
		Facilities: in.Facilities,
		ImageURL:   in.ImageURL,
	}
	if err := s.centers.Create(ctx, center); err != nil {
		return nil, fmt.Errorf("create hawker center: %w", err)
	}
	return center, nil
}

func (s *hawkerCenterService) Update(ctx context.Context, actor *model.Identity, id uint, in CenterInput) (*model.HawkerCenter, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	center, err := s.centers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("find hawker center", err)
	}
	if err := s.check(&in); err != nil {
		return nil, err
	}
	center.Name = in.Name
	center.Address = in.Address
	center.Facilities = in.Facilities
	if in.ImageURL != "" {
		center.ImageURL = in.ImageURL
	}
	if err := s.centers.Update(ctx, center); err != nil {
		return nil, fmt.Errorf("update hawker center: %w", err)
	}
	s.invalidateStalls(ctx, id)
	return center, nil
}

// Delete removes a hawker center that no stall references.
func (s *hawkerCenterService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.centers.FindByID(ctx, id); err != nil {
		return notFound("find hawker center", err)
	}
	n, err := s.stalls.CountByCenter(ctx, id)
	if err != nil {
		return fmt.Errorf("count center stalls: %w", err)
	}
	if n > 0 {
		return errors.ErrCenterInUse
	}
	if err := s.centers.Delete(ctx, id); err != nil {
		// a stall was attached after the count
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errors.ErrCenterInUse
		}
		return notFound("delete hawker center", err)
	}
	return nil
}

func (s *hawkerCenterService) Options(ctx context.Context) ([]model.Option, error) {
	opts, err := s.centers.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("hawker center options: %w", err)
	}
	return opts, nil
}

func (s *hawkerCenterService) check(in *CenterInput) error {
	in.Name = trimmed(in.Name)
	in.Address = trimmed(in.Address)
	in.Facilities = trimmed(in.Facilities)
	return checkInput(in, centerMessages)
}

func (s *hawkerCenterService) invalidateStalls(ctx context.Context, centerID uint) {
	if s.cache == nil {
		return
	}
	stalls, err := s.stalls.FindByCenter(ctx, centerID)
	if err != nil {
		return
	}
	ids := make([]uint, 0, len(stalls))
	for _, st := range stalls {
		ids = append(ids, st.ID)
	}
	s.cache.Invalidate(ctx, ids...)
}
