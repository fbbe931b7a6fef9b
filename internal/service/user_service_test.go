package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateAndList(t *testing.T) {
	svc := newServices(testutil.NewMemoryUoW())
	ctx := context.Background()

	u, err := svc.users.Create(ctx, testutil.TestScope(), domain.UserInput{Name: "Ana", Email: "ana@acme.test", Role: "master"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMaster, u.Role)

	_, err = svc.users.Create(ctx, domain.Scope{CompanyID: testutil.OtherCompany}, domain.UserInput{Name: "Bo", Role: domain.RoleUser})
	require.NoError(t, err)

	users, err := svc.users.List(ctx, testutil.TestScope())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
}

func TestUserService_RejectsBadEmail(t *testing.T) {
	svc := newServices(testutil.NewMemoryUoW())
	_, err := svc.users.Create(context.Background(), testutil.TestScope(), domain.UserInput{Name: "Ana", Email: "nope", Role: domain.RoleUser})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "email")
}
