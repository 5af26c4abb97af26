package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/store"
)

func newMemberFixture(t *testing.T) (*MemberService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	require.NoError(t, mem.Set(context.Background(), tenantPath("market1"), store.Doc{"OFM_name": "market1"}, false))
	return NewMemberService(mem), mem
}

func TestRegisterMemberPerRole(t *testing.T) {
	svc, mem := newMemberFixture(t)
	ctx := context.Background()

	for _, role := range []string{constants.ROLE_PARTNER, constants.ROLE_CUSTOMER, constants.ROLE_DELIVERY} {
		result, err := svc.Register(ctx, role, model.RegisterMemberInput{
			TenantName: "market1",
			Name:       "alice",
			Password:   "pw",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, result, role)
	}

	// each role lives in its own subcollection, so the same name is fine
	partner, err := mem.Get(ctx, memberCollection("market1", constants.ROLE_PARTNER)+"/alice")
	require.NoError(t, err)
	assert.Equal(t, "", store.Str(partner, "status"))

	delivery, err := mem.Get(ctx, memberCollection("market1", constants.ROLE_DELIVERY)+"/alice")
	require.NoError(t, err)
	assert.Equal(t, constants.DELIVERY_STATUS_AVAILABLE, store.Str(delivery, "status"))
}

func TestRegisterMemberDuplicateAndMissingTenant(t *testing.T) {
	svc, _ := newMemberFixture(t)
	ctx := context.Background()

	input := model.RegisterMemberInput{TenantName: "market1", Name: "alice", Password: "pw"}
	_, err := svc.Register(ctx, constants.ROLE_PARTNER, input)
	require.NoError(t, err)

	result, err := svc.Register(ctx, constants.ROLE_PARTNER, input)
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, result)

	result, err = svc.Register(ctx, constants.ROLE_PARTNER, model.RegisterMemberInput{
		TenantName: "ghost", Name: "alice", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, result)
}

func TestDeliveryStatusRoundTrip(t *testing.T) {
	svc, _ := newMemberFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, constants.ROLE_DELIVERY, model.RegisterMemberInput{
		TenantName: "market1", Name: "dan", Password: "pw",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetDeliveryStatus(ctx, "market1", "dan", "busy"))

	member, err := svc.Get(ctx, constants.ROLE_DELIVERY, "market1", "dan")
	require.NoError(t, err)
	assert.Equal(t, "busy", member.Status)
	assert.Equal(t, "dan", member.Name)

	err = svc.SetDeliveryStatus(ctx, "market1", "ghost", "busy")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestMemberCheckPassword(t *testing.T) {
	svc, _ := newMemberFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, constants.ROLE_CUSTOMER, model.RegisterMemberInput{
		TenantName: "market1", Name: "bob", Password: "hunter2",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		member   string
		password string
		want     Status
	}{
		{name: "ok", member: "bob", password: "hunter2", want: StatusSuccess},
		{name: "wrong", member: "bob", password: "hunter3", want: StatusWrongPassword},
		{name: "unknown", member: "carol", password: "hunter2", want: StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.CheckPassword(ctx, constants.ROLE_CUSTOMER, model.MemberPasswordInput{
				TenantName: "market1", Name: tt.member, Password: tt.password,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}
