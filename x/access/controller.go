package access

import (
	"regexp"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

var isOperation = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,63}$`).MatchString

// Authorizer decides whether a caller may execute an operation of a
// target instance.
type Authorizer interface {
	Authorize(db revenue.ReadOnlyKVStore, caller, target revenue.Address, operation string) (bool, error)
}

// Controller manages roles and implements the Authorizer backed by them.
type Controller interface {
	Authorizer

	// GrantRole gives the account a role. The caller must be an admin.
	// Granting a role that is already held is a no-op.
	GrantRole(ctx revenue.Context, db revenue.KVStore, role Role, account revenue.Address) error
	// RevokeRole takes a role away from an account. The caller must be an
	// admin. Revoking a role that is not held is a no-op.
	RevokeRole(ctx revenue.Context, db revenue.KVStore, role Role, account revenue.Address) error
	// SetTargetFunctionRole assigns the role required to execute each of
	// the given operations of a target. The caller must be an admin.
	SetTargetFunctionRole(ctx revenue.Context, db revenue.KVStore, target revenue.Address, operations []string, role Role) error
	// HasRole returns true if the account holds the role.
	HasRole(db revenue.ReadOnlyKVStore, role Role, account revenue.Address) (bool, error)
	// TargetFunctionRole returns the role required to execute an
	// operation of a target.
	TargetFunctionRole(db revenue.ReadOnlyKVStore, target revenue.Address, operation string) (Role, error)
}

// NewController returns a role based controller.
func NewController() Controller {
	return &controller{
		members:   orm.NewModelBucket("acc_member"),
		functions: orm.NewModelBucket("acc_function"),
	}
}

type controller struct {
	members   orm.ModelBucket
	functions orm.ModelBucket
}

var _ Controller = (*controller)(nil)

func (c *controller) HasRole(db revenue.ReadOnlyKVStore, role Role, account revenue.Address) (bool, error) {
	if role == RolePublic {
		return true, nil
	}
	if len(account) == 0 {
		return false, nil
	}
	switch err := c.members.Has(db, membershipKey(role, account)); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

func (c *controller) TargetFunctionRole(db revenue.ReadOnlyKVStore, target revenue.Address, operation string) (Role, error) {
	var fr FunctionRole
	switch err := c.functions.One(db, functionKey(target, operation), &fr); {
	case err == nil:
		return fr.Role, nil
	case errors.ErrNotFound.Is(err):
		return RoleAdmin, nil
	default:
		return 0, err
	}
}

func (c *controller) Authorize(db revenue.ReadOnlyKVStore, caller, target revenue.Address, operation string) (bool, error) {
	role, err := c.TargetFunctionRole(db, target, operation)
	if err != nil {
		return false, errors.Wrap(err, "target function role")
	}
	return c.HasRole(db, role, caller)
}

func (c *controller) GrantRole(ctx revenue.Context, db revenue.KVStore, role Role, account revenue.Address) error {
	if err := c.requireAdmin(ctx, db); err != nil {
		return err
	}
	m := Membership{Role: role, Account: account}
	if err := m.Validate(); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if has, err := c.HasRole(db, role, account); err != nil || has {
		return err
	}
	if _, err := c.members.Put(db, membershipKey(role, account), &m); err != nil {
		return errors.Wrap(err, "save membership")
	}
	revenue.Emit(ctx, RoleGranted{Role: role, Account: account})
	return nil
}

func (c *controller) RevokeRole(ctx revenue.Context, db revenue.KVStore, role Role, account revenue.Address) error {
	if err := c.requireAdmin(ctx, db); err != nil {
		return err
	}
	if role == RolePublic {
		return errors.Wrap(errors.ErrInvalidInput, "public role cannot be revoked")
	}
	if has, err := c.HasRole(db, role, account); err != nil || !has {
		return err
	}
	if err := c.members.Delete(db, membershipKey(role, account)); err != nil {
		return errors.Wrap(err, "delete membership")
	}
	revenue.Emit(ctx, RoleRevoked{Role: role, Account: account})
	return nil
}

func (c *controller) SetTargetFunctionRole(ctx revenue.Context, db revenue.KVStore, target revenue.Address, operations []string, role Role) error {
	if err := c.requireAdmin(ctx, db); err != nil {
		return err
	}
	return c.setTargetFunctionRole(db, target, operations, role)
}

// setTargetFunctionRole stores the assignment without checking the caller.
func (c *controller) setTargetFunctionRole(db revenue.KVStore, target revenue.Address, operations []string, role Role) error {
	for _, op := range operations {
		fr := FunctionRole{Target: target, Operation: op, Role: role}
		if err := fr.Validate(); err != nil {
			return errors.Wrap(errors.ErrInvalidInput, err.Error())
		}
		if _, err := c.functions.Put(db, functionKey(target, op), &fr); err != nil {
			return errors.Wrapf(err, "save %q function role", op)
		}
	}
	return nil
}

// grant stores a membership without checking the caller.
func (c *controller) grant(db revenue.KVStore, role Role, account revenue.Address) error {
	m := Membership{Role: role, Account: account}
	_, err := c.members.Put(db, membershipKey(role, account), &m)
	return err
}

func (c *controller) requireAdmin(ctx revenue.Context, db revenue.ReadOnlyKVStore) error {
	caller, ok := revenue.GetCaller(ctx)
	if !ok {
		return errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	isAdmin, err := c.HasRole(db, RoleAdmin, caller)
	if err != nil {
		return err
	}
	if !isAdmin {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an admin", caller)
	}
	return nil
}

// Require returns the caller of the context if it is authorized to execute
// the operation of the target. It fails with ErrUnauthorized otherwise.
func Require(ctx revenue.Context, db revenue.ReadOnlyKVStore, auth Authorizer, target revenue.Address, operation string) (revenue.Address, error) {
	caller, ok := revenue.GetCaller(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	allowed, err := auth.Authorize(db, caller, target, operation)
	if err != nil {
		return nil, errors.Wrap(err, "authorize")
	}
	if !allowed {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s may not %s on %s", caller, operation, target)
	}
	return caller, nil
}

// AllowAll is an Authorizer that authorizes every caller. Use it only in
// tests and tools.
type AllowAll struct{}

var _ Authorizer = AllowAll{}

// Authorize always returns true.
func (AllowAll) Authorize(revenue.ReadOnlyKVStore, revenue.Address, revenue.Address, string) (bool, error) {
	return true, nil
}
