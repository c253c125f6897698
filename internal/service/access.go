package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

// Me returns the signed-in user with effective permissions and the apps and
// features it can reach.
func (s *Service) Me(ctx context.Context) (entity.AccessProfile, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.AccessProfile{}, err
	}

	apps, features, err := s.toggles(ctx)
	if err != nil {
		return entity.AccessProfile{}, err
	}

	return entity.AccessProfile{
		User:                 user,
		EffectivePermissions: entity.EffectivePermissions(user),
		Apps:                 entity.AccessibleToggles(user, apps),
		Features:             entity.AccessibleToggles(user, features),
	}, nil
}

func (s *Service) PermissionsOverview(ctx context.Context) (entity.PermissionsOverview, error) {
	apps, features, err := s.toggles(ctx)
	if err != nil {
		return entity.PermissionsOverview{}, err
	}

	return entity.PermissionsOverview{
		Apps:     apps,
		Features: features,
		Roles:    entity.RolePermissionTable(),
	}, nil
}

// SetToggle flips a global app or feature switch.
func (s *Service) SetToggle(ctx context.Context, typ entity.ToggleType, id string, enabled bool) (entity.Toggle, error) {
	if !typ.IsValid() {
		return entity.Toggle{}, fmt.Errorf("%w: type must be app or feature", entity.ErrValidation)
	}

	if id == "" {
		return entity.Toggle{}, fmt.Errorf("%w: id is required", entity.ErrValidation)
	}

	toggle, err := s.store.SetToggle(ctx, typ, id, enabled)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Toggle{}, fmt.Errorf("%s %s: %w", typ, id, err)
		}

		return entity.Toggle{}, fmt.Errorf("set toggle: %w", err)
	}

	user, _ := entity.UserFromContext(ctx)

	slog.InfoContext(ctx, "toggle changed", "toggle_type", typ, "toggle_id", id, "enabled", enabled)
	s.publish(ctx, entity.EventToggleChanged, user.OrganizationID, map[string]any{
		"type":    typ,
		"id":      id,
		"enabled": enabled,
	})

	return toggle, nil
}

func (s *Service) AppAccess(ctx context.Context, appID string) (bool, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return false, err
	}

	apps, err := s.store.Apps(ctx)
	if err != nil {
		return false, fmt.Errorf("get apps: %w", err)
	}

	return entity.HasAppAccess(user, apps, appID), nil
}

func (s *Service) FeatureAccess(ctx context.Context, featureID string) (bool, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return false, err
	}

	features, err := s.store.Features(ctx)
	if err != nil {
		return false, fmt.Errorf("get features: %w", err)
	}

	return entity.HasFeatureAccess(user, features, featureID), nil
}

// AccessibleToggles returns the apps and features the current user can reach.
func (s *Service) AccessibleToggles(ctx context.Context) ([]entity.AppPermission, []entity.FeaturePermission, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}

	apps, features, err := s.toggles(ctx)
	if err != nil {
		return nil, nil, err
	}

	return entity.AccessibleToggles(user, apps), entity.AccessibleToggles(user, features), nil
}

func (s *Service) toggles(ctx context.Context) ([]entity.AppPermission, []entity.FeaturePermission, error) {
	apps, err := s.store.Apps(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get apps: %w", err)
	}

	features, err := s.store.Features(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get features: %w", err)
	}

	return apps, features, nil
}
