package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (s *Service) Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return nil, err
	}

	f.OrganizationID = orgID

	users, err := s.store.Users(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return users, nil
}

// CreateUser adds a staff member to the organization of the actor. Only root
// may create users at or above its own level, and no one creates a second root.
func (s *Service) CreateUser(ctx context.Context, u entity.User) (entity.User, error) {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, err
	}

	u.Name = strings.TrimSpace(u.Name)

	err = ValidateName(u.Name)
	if err != nil {
		return entity.User{}, err
	}

	u.Email, err = NormalizeEmail(u.Email)
	if err != nil {
		return entity.User{}, err
	}

	if u.Role == "" {
		u.Role = entity.RoleAgent
	}

	if !u.Role.IsValid() {
		return entity.User{}, fmt.Errorf("%w: unknown role %q", entity.ErrValidation, u.Role)
	}

	if u.Role == entity.RoleRoot {
		return entity.User{}, fmt.Errorf("%w: organization already has a root user", entity.ErrValidation)
	}

	if !actor.IsRoot() && u.Role.Level() >= actor.Role.Level() {
		return entity.User{}, fmt.Errorf("create %s as %s: %w", u.Role, actor.Role, entity.ErrForbidden)
	}

	err = checkGrant(actor, u.Permissions)
	if err != nil {
		return entity.User{}, err
	}

	if u.Availability == "" {
		u.Availability = entity.AvailabilityOffline
	}

	if !u.Availability.IsValid() {
		return entity.User{}, fmt.Errorf("%w: unknown availability %q", entity.ErrValidation, u.Availability)
	}

	now := s.now().UTC()
	u.ID = ""
	u.OrganizationID = actor.OrganizationID
	u.Status = entity.UserStatusActive
	u.CreatedAt = now
	u.UpdatedAt = now

	u, err = s.store.CreateUser(ctx, u)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "target_user_id", u.ID, "role", u.Role)

	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, upd entity.UserUpdate) (entity.User, error) {
	actor, target, err := s.manageable(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	if upd.Role != nil && *upd.Role != target.Role {
		if !upd.Role.IsValid() {
			return entity.User{}, fmt.Errorf("%w: unknown role %q", entity.ErrValidation, *upd.Role)
		}

		if target.IsRoot() || *upd.Role == entity.RoleRoot {
			return entity.User{}, fmt.Errorf("change root role: %w", entity.ErrForbidden)
		}

		if !actor.IsRoot() && upd.Role.Level() >= actor.Role.Level() {
			return entity.User{}, fmt.Errorf("promote to %s as %s: %w", *upd.Role, actor.Role, entity.ErrForbidden)
		}
	}

	if upd.Status != nil {
		if !upd.Status.IsValid() {
			return entity.User{}, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, *upd.Status)
		}

		if target.IsRoot() && *upd.Status != entity.UserStatusActive {
			return entity.User{}, fmt.Errorf("deactivate root: %w", entity.ErrForbidden)
		}
	}

	if upd.Availability != nil && !upd.Availability.IsValid() {
		return entity.User{}, fmt.Errorf("%w: unknown availability %q", entity.ErrValidation, *upd.Availability)
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if err := ValidateName(name); err != nil {
			return entity.User{}, err
		}

		upd.Name = &name
	}

	err = checkGrant(actor, upd.Permissions)
	if err != nil {
		return entity.User{}, err
	}

	upd.Apply(&target)
	target.UpdatedAt = s.now().UTC()

	err = s.store.UpdateUser(ctx, target)
	if err != nil {
		return entity.User{}, fmt.Errorf("update user %s: %w", id, err)
	}

	slog.InfoContext(ctx, "user updated", "target_user_id", id)

	return target, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	if actor.ID == id {
		return entity.ErrCannotDeleteSelf
	}

	_, target, err := s.manageable(ctx, id)
	if err != nil {
		return err
	}

	if target.IsRoot() {
		return entity.ErrCannotDeleteRoot
	}

	err = s.store.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	slog.InfoContext(ctx, "user deleted", "target_user_id", id)

	return nil
}

// manageable loads a user of the actor's organization that the actor may modify.
func (s *Service) manageable(ctx context.Context, id string) (entity.User, entity.User, error) {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, entity.User{}, err
	}

	target, err := s.store.User(ctx, id)
	if err != nil {
		return entity.User{}, entity.User{}, fmt.Errorf("get user %s: %w", id, err)
	}

	if target.OrganizationID != actor.OrganizationID {
		return entity.User{}, entity.User{}, fmt.Errorf("get user %s: %w", id, entity.ErrNotFound)
	}

	if !entity.CanManageUser(actor, target) {
		return entity.User{}, entity.User{}, fmt.Errorf("manage %s as %s: %w", target.Role, actor.Role, entity.ErrForbidden)
	}

	return actor, target, nil
}

// checkGrant refuses to hand out permissions the actor does not hold itself.
func checkGrant(actor entity.User, permissions []string) error {
	for _, p := range permissions {
		if !entity.HasPermission(actor, p) {
			return fmt.Errorf("grant %q: %w", p, entity.ErrForbidden)
		}
	}

	return nil
}

func (s *Service) Organizations(ctx context.Context) ([]entity.Organization, error) {
	orgs, err := s.store.Organizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get organizations: %w", err)
	}

	return orgs, nil
}

func (s *Service) CurrentOrganization(ctx context.Context) (entity.Organization, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Organization{}, err
	}

	org, err := s.store.Organization(ctx, orgID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Organization{}, fmt.Errorf("organization %s: %w", orgID, err)
		}

		return entity.Organization{}, fmt.Errorf("get organization: %w", err)
	}

	return org, nil
}
