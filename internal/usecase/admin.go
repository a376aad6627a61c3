package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// AdminRole selects which delegated governance identity to rotate.
type AdminRole string

const (
	RoleUpgradeAdmin   AdminRole = "upgrade-admin"
	RoleEmergencyAdmin AdminRole = "emergency-admin"
)

// ManageAdmins covers the two-step admin handover and delegated-role
// rotation. Admin transfer is deliberately two-step: a typo'd identity can
// be corrected as long as the new admin hasn't accepted.
type ManageAdmins struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	verifier SignatureVerifier
}

// NewManageAdmins creates a new ManageAdmins use case
func NewManageAdmins(cfg *config.RuntimeConfig, store RegistryStore, verifier SignatureVerifier) *ManageAdmins {
	return &ManageAdmins{cfg: cfg, store: store, verifier: verifier}
}

// SetPendingAdmin nominates a new registry owner. Owner only.
func (uc *ManageAdmins) SetPendingAdmin(ctx context.Context, pending common.Address) error {
	return uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "setPendingAdmin", "", pending, nil)
		if err != nil {
			return err
		}
		if !rec.IsOwner(caller) {
			return fmt.Errorf("%w: setPendingAdmin requires the registry owner", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}
		if pending == (common.Address{}) {
			return fmt.Errorf("%w: pending admin", domain.ErrZeroAddress)
		}
		rec.PendingAdmin = pending
		return nil
	})
}

// AcceptAdmin completes the handover. Only the nominated identity may accept.
func (uc *ManageAdmins) AcceptAdmin(ctx context.Context) error {
	return uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "acceptAdmin", "", common.Address{}, nil)
		if err != nil {
			return err
		}
		if rec.PendingAdmin == (common.Address{}) || caller != rec.PendingAdmin {
			return domain.ErrNotPendingAdmin
		}
		if rec.Paused {
			return domain.ErrPaused
		}
		rec.Admin = rec.PendingAdmin
		rec.PendingAdmin = common.Address{}
		return nil
	})
}

// SetRole rotates a delegated governance identity. Owner only. The zero
// address is allowed here: it revokes the delegation entirely.
func (uc *ManageAdmins) SetRole(ctx context.Context, role AdminRole, id common.Address) error {
	return uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "setRole:"+string(role), "", id, nil)
		if err != nil {
			return err
		}
		if !rec.IsOwner(caller) {
			return fmt.Errorf("%w: role rotation requires the registry owner", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}
		switch role {
		case RoleUpgradeAdmin:
			rec.UpgradeAdmin = id
		case RoleEmergencyAdmin:
			rec.EmergencyAdmin = id
		default:
			return fmt.Errorf("unknown role %q", role)
		}
		return nil
	})
}
