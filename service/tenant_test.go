package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofm_manager/model"
	"ofm_manager/storage"
	"ofm_manager/store"
)

func newTenantFixture(t *testing.T) (*TenantService, *store.MemoryStore, *storage.MemoryBucket) {
	t.Helper()
	mem := store.NewMemoryStore()
	bucket := storage.NewMemoryBucket("test-bucket")
	return NewTenantService(mem, bucket), mem, bucket
}

func registerTenant(t *testing.T, svc *TenantService, name string) {
	t.Helper()
	result, err := svc.Register(context.Background(), model.RegisterAdminInput{
		TenantName: name,
		AdminName:  "admin",
		Password:   "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, result)
}

func TestRegisterCreatesTenantAdminAndFolder(t *testing.T) {
	svc, mem, bucket := newTenantFixture(t)
	ctx := context.Background()

	registerTenant(t, svc, "Bangkok Market")

	doc, err := mem.Get(ctx, tenantPath("Bangkok Market"))
	require.NoError(t, err)
	assert.Equal(t, "Bangkok Market", store.Str(doc, "OFM_name"))
	assert.Equal(t, "bangkok market", store.Str(doc, "OFM_name_lower"))
	prefixes, _ := doc["search_prefix"].([]string)
	assert.Contains(t, prefixes, "bangkok market")
	assert.Contains(t, prefixes, "b")

	admins, err := mem.Query(ctx, "registeradminOFM", "nameofm", "==", "Bangkok Market", 1)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.NotEqual(t, "s3cret", store.Str(admins[0].Data, "addminpass"))

	keys, err := bucket.List(ctx, "Bangkok Market/")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bangkok Market/.keep"}, keys)
}

func TestRegisterDuplicateTenant(t *testing.T) {
	svc, _, _ := newTenantFixture(t)

	registerTenant(t, svc, "Bangkok Market")

	result, err := svc.Register(context.Background(), model.RegisterAdminInput{
		TenantName: "Bangkok Market",
		AdminName:  "other",
		Password:   "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, result)
}

func TestRegisterBlankName(t *testing.T) {
	svc, _, _ := newTenantFixture(t)

	_, err := svc.Register(context.Background(), model.RegisterAdminInput{
		TenantName: "   ",
		Password:   "pw",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestGetTenant(t *testing.T) {
	svc, _, _ := newTenantFixture(t)
	ctx := context.Background()

	registerTenant(t, svc, "Bangkok Market")

	tenant, err := svc.Get(ctx, "Bangkok Market")
	require.NoError(t, err)
	assert.Equal(t, "Bangkok Market", tenant.Name)
	assert.Equal(t, "bangkok market", tenant.NameLower)
	assert.Contains(t, tenant.SearchPrefix, "bangkok")

	_, err = svc.Get(ctx, "Ghost Market")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestCheckPassword(t *testing.T) {
	svc, _, _ := newTenantFixture(t)
	ctx := context.Background()

	registerTenant(t, svc, "Bangkok Market")

	tests := []struct {
		name     string
		tenant   string
		password string
		want     Status
	}{
		{name: "correct password", tenant: "Bangkok Market", password: "s3cret", want: StatusSuccess},
		{name: "wrong password", tenant: "Bangkok Market", password: "nope", want: StatusWrongPassword},
		{name: "unknown market", tenant: "Ghost Market", password: "s3cret", want: StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.CheckPassword(ctx, model.AdminPasswordInput{
				TenantName: tt.tenant,
				Password:   tt.password,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestSearchByPrefix(t *testing.T) {
	svc, _, _ := newTenantFixture(t)
	ctx := context.Background()

	registerTenant(t, svc, "Bangkok Market")
	registerTenant(t, svc, "Chiang Mai Bazaar")

	names, err := svc.Search(ctx, "Bang", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bangkok Market"}, names)

	// whole normalized name is itself a prefix
	names, err = svc.Search(ctx, "chiang mai bazaar", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chiang Mai Bazaar"}, names)

	// substring that is not left-anchored must not match
	names, err = svc.Search(ctx, "Market", 10)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = svc.Search(ctx, "  ", 10)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}
