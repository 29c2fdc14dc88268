package repository

import (
	"testing"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewUserRepository(testDB)
	return testDB, repo
}

func TestUserRepository_Create(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name    string
		user    *model.User
		wantErr bool
	}{
		{
			name: "Valid user",
			user: &model.User{
				FullName:     "Asha Nair",
				Email:        "asha@example.com",
				MobileNumber: "9876543210",
				Role:         model.RoleCashier,
			},
			wantErr: false,
		},
		{
			name: "Duplicate email",
			user: &model.User{
				FullName:     "Another Person",
				Email:        "asha@example.com",
				MobileNumber: "9123456780",
				Role:         model.RoleStoreManager,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
				assert.False(t, tt.user.CreatedAt.IsZero())
			}
		})
	}
}

func TestUserRepository_DuplicateEmailKeepsRowCount(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	first := &model.User{
		FullName:     "Asha Nair",
		Email:        "asha@example.com",
		MobileNumber: "9876543210",
		Role:         model.RoleCashier,
	}
	require.NoError(t, repo.Create(first))

	dup := &model.User{
		FullName:     "Someone Else",
		Email:        "asha@example.com",
		MobileNumber: "9000000000",
		Role:         model.RoleCashier,
	}
	assert.Error(t, repo.Create(dup))

	users, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_FindAll_NewestFirst(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		require.NoError(t, repo.Create(&model.User{
			FullName:     "User " + email,
			Email:        email,
			MobileNumber: "9876543210",
			Role:         model.RoleSalesAssociate,
		}))
	}

	users, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "c@example.com", users[0].Email)
	assert.Equal(t, "b@example.com", users[1].Email)
	assert.Equal(t, "a@example.com", users[2].Email)
}

func TestUserRepository_FindAll_Empty(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	users, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		FullName:     "Asha Nair",
		Email:        "asha@example.com",
		MobileNumber: "9876543210",
		Role:         model.RoleCashier,
	}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByEmail("asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.FullName, found.FullName)

	missing, err := repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, missing)
}
