package postgres

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signup-service/app/domain"
	"signup-service/app/utils/logger"
)

func createTestProvisionRepository(t *testing.T) (*ProvisionRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)

	repo := NewProvisionRepository(mockDB, testLogger).(*ProvisionRepository)
	return repo, mockDB
}

func createTestProfile(t *testing.T) *domain.UserProfile {
	t.Helper()

	profile, err := domain.NewUserProfile(uuid.New(), "joao@example.com", "João Silva")
	require.NoError(t, err)
	return profile
}

func TestProvisionRepository_UpsertProfile(t *testing.T) {
	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface, *domain.UserProfile)
		wantErr bool
	}{
		{
			name: "successful upsert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.UserProfile) {
				mockDB.ExpectExec("INSERT INTO gestao_marcenaria__usuarios").
					WithArgs(profile.UserID, profile.Email, profile.Nome, profile.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database failure",
			setupDB: func(mockDB pgxmock.PgxPoolIface, profile *domain.UserProfile) {
				mockDB.ExpectExec("INSERT INTO gestao_marcenaria__usuarios").
					WithArgs(profile.UserID, profile.Email, profile.Nome, profile.UpdatedAt).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProvisionRepository(t)
			defer mockDB.Close()

			profile := createTestProfile(t)
			tt.setupDB(mockDB, profile)

			err := repo.UpsertProfile(context.Background(), profile)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProvisionRepository_CreateTenant(t *testing.T) {
	t.Run("fills in the generated id", func(t *testing.T) {
		repo, mockDB := createTestProvisionRepository(t)
		defer mockDB.Close()

		tenant, err := domain.NewTenant("Marcenaria Silva")
		require.NoError(t, err)

		generatedID := uuid.New()
		mockDB.ExpectQuery("INSERT INTO gestao_marcenaria__tenants").
			WithArgs(tenant.Nome, tenant.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(generatedID))

		err = repo.CreateTenant(context.Background(), tenant)

		require.NoError(t, err)
		assert.Equal(t, generatedID, tenant.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("database failure", func(t *testing.T) {
		repo, mockDB := createTestProvisionRepository(t)
		defer mockDB.Close()

		tenant, err := domain.NewTenant("Marcenaria Silva")
		require.NoError(t, err)

		mockDB.ExpectQuery("INSERT INTO gestao_marcenaria__tenants").
			WithArgs(tenant.Nome, tenant.CreatedAt).
			WillReturnError(errors.New("relation does not exist"))

		err = repo.CreateTenant(context.Background(), tenant)

		assert.Error(t, err)
		assert.Equal(t, uuid.Nil, tenant.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestProvisionRepository_CreateMembership(t *testing.T) {
	t.Run("successful insert", func(t *testing.T) {
		repo, mockDB := createTestProvisionRepository(t)
		defer mockDB.Close()

		membership, err := domain.NewAdminMembership(uuid.New(), uuid.New())
		require.NoError(t, err)

		mockDB.ExpectExec("INSERT INTO gestao_marcenaria__tenant_membros").
			WithArgs(membership.TenantID, membership.UserID, membership.Papel, membership.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = repo.CreateMembership(context.Background(), membership)

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("database failure", func(t *testing.T) {
		repo, mockDB := createTestProvisionRepository(t)
		defer mockDB.Close()

		membership, err := domain.NewAdminMembership(uuid.New(), uuid.New())
		require.NoError(t, err)

		mockDB.ExpectExec("INSERT INTO gestao_marcenaria__tenant_membros").
			WithArgs(membership.TenantID, membership.UserID, membership.Papel, membership.CreatedAt).
			WillReturnError(errors.New("foreign key violation"))

		err = repo.CreateMembership(context.Background(), membership)

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
