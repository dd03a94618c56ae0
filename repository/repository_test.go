package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"menuapi-backend/config"
	"menuapi-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepository opens a fresh migrated sqlite database for one test.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := config.ConnectDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db, config.DriverSQLite))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

// seedMenu creates restaurant -> section -> item and returns them.
func seedMenu(t *testing.T, s Store) (*models.Restaurant, *models.Section, *models.Item) {
	t.Helper()
	ctx := context.Background()

	r := &models.Restaurant{Name: "Cantina", KitchenType: "Mexican", City: "Recife", UF: "PE", Contact: "81999998888", IsActive: true}
	require.NoError(t, s.CreateRestaurant(ctx, r))
	require.NoError(t, s.CreateOpeningHours(ctx, []models.OpeningHour{
		{RestaurantID: r.ID, DayOfWeek: models.Friday, OpensAt: "18:00", ClosesAt: "23:00", IsActive: true},
		{RestaurantID: r.ID, DayOfWeek: models.Monday, OpensAt: "11:00", ClosesAt: "15:00", IsActive: true},
	}))

	sec := &models.Section{RestaurantID: &r.ID, Name: "Tacos", Description: "Corn tortillas", IsActive: true}
	require.NoError(t, s.CreateSection(ctx, sec))

	it := &models.Item{SectionID: sec.ID, Name: "Al pastor", Description: "Pork", Price: 19.99, IsActive: true}
	require.NoError(t, s.CreateItem(ctx, it))

	return r, sec, it
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newTestRepository(t),
		"memory": NewMemory(),
	}
}

func TestFindActiveRestaurantWithHours(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r, _, _ := seedMenu(t, s)

			got, err := s.FindActiveRestaurant(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, "Cantina", got.Name)
			assert.Equal(t, "PE", got.UF)
			assert.True(t, got.IsActive)
			assert.False(t, got.CreatedAt.IsZero())

			require.Len(t, got.OpeningHours, 2)
			assert.Equal(t, models.Monday, got.OpeningHours[0].DayOfWeek)
			assert.Equal(t, "11:00", got.OpeningHours[0].OpensAt)
			assert.Equal(t, models.Friday, got.OpeningHours[1].DayOfWeek)

			_, err = s.FindActiveRestaurant(ctx, r.ID+100)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestInactiveOpeningHoursAreHidden(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r, _, _ := seedMenu(t, s)

			h, err := s.FindOpeningHour(ctx, r.ID, models.Friday)
			require.NoError(t, err)
			h.IsActive = false
			require.NoError(t, s.SaveOpeningHour(ctx, h))

			got, err := s.FindActiveRestaurant(ctx, r.ID)
			require.NoError(t, err)
			require.Len(t, got.OpeningHours, 1)
			assert.Equal(t, models.Monday, got.OpeningHours[0].DayOfWeek)

			all, err := s.ListOpeningHours(ctx, r.ID)
			require.NoError(t, err)
			assert.Len(t, all, 2)

			_, err = s.FindOpeningHour(ctx, r.ID, models.Sunday)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDuplicateOpeningDay(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			r, _, _ := seedMenu(t, s)
			err := s.CreateOpeningHours(context.Background(), []models.OpeningHour{
				{RestaurantID: r.ID, DayOfWeek: models.Monday, OpensAt: "08:00", ClosesAt: "09:00", IsActive: true},
			})
			assert.ErrorIs(t, err, ErrDuplicate)
		})
	}
}

func TestListsAreOrderedAndActive(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r, sec, _ := seedMenu(t, s)

			second := &models.Section{RestaurantID: &r.ID, Name: "Drinks", Description: "Cold", IsActive: true}
			require.NoError(t, s.CreateSection(ctx, second))
			third := &models.Section{RestaurantID: &r.ID, Name: "Old", Description: "Gone", IsActive: true}
			require.NoError(t, s.CreateSection(ctx, third))
			third.IsActive = false
			require.NoError(t, s.SaveSection(ctx, third))

			sections, err := s.ListActiveSections(ctx, r.ID)
			require.NoError(t, err)
			require.Len(t, sections, 2)
			assert.Equal(t, sec.ID, sections[0].ID)
			assert.Equal(t, second.ID, sections[1].ID)
			assert.Equal(t, r.ID, sections[0].OwnerID())

			restaurants, err := s.ListActiveRestaurants(ctx)
			require.NoError(t, err)
			require.Len(t, restaurants, 1)
			assert.Len(t, restaurants[0].OpeningHours, 2)
		})
	}
}

func TestActiveChain(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r, sec, it := seedMenu(t, s)

			got, err := s.FindActiveItem(ctx, it.ID)
			require.NoError(t, err)
			assert.Equal(t, 19.99, got.Price)
			assert.Equal(t, sec.ID, got.SectionID)

			// inactive restaurant hides the whole menu even before children are touched
			r.IsActive = false
			r.OpeningHours = nil
			require.NoError(t, s.SaveRestaurant(ctx, r))

			_, err = s.FindActiveSection(ctx, sec.ID)
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.FindActiveItem(ctx, it.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			sections, err := s.ListActiveSections(ctx, r.ID)
			require.NoError(t, err)
			assert.Empty(t, sections)
			items, err := s.ListActiveItems(ctx, sec.ID)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestDeactivateRestaurantChildren(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			r, sec, it := seedMenu(t, s)

			other, otherSec, otherItem := seedMenu(t, s)

			require.NoError(t, s.DeactivateRestaurantChildren(ctx, r.ID))

			// the restaurant itself is still active, its children are not
			_, err := s.FindActiveRestaurant(ctx, r.ID)
			require.NoError(t, err)
			_, err = s.FindActiveSection(ctx, sec.ID)
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.FindActiveItem(ctx, it.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = s.FindActiveRestaurant(ctx, other.ID)
			require.NoError(t, err)
			_, err = s.FindActiveSection(ctx, otherSec.ID)
			require.NoError(t, err)
			_, err = s.FindActiveItem(ctx, otherItem.ID)
			require.NoError(t, err)
		})
	}
}

func TestDeactivateSectionItems(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, sec, it := seedMenu(t, s)

			require.NoError(t, s.DeactivateSectionItems(ctx, sec.ID))

			_, err := s.FindActiveSection(ctx, sec.ID)
			require.NoError(t, err)
			_, err = s.FindActiveItem(ctx, it.ID)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestForeignKeysAreEnforced(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			missing := uint(999)

			err := s.CreateSection(ctx, &models.Section{RestaurantID: &missing, Name: "x", Description: "y", IsActive: true})
			assert.ErrorIs(t, err, ErrNotFound)

			err = s.CreateItem(ctx, &models.Item{SectionID: missing, Name: "x", Description: "y", Price: 1, IsActive: true})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestTransactionRollsBack(t *testing.T) {
	boom := errors.New("boom")

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var id uint
			err := s.Transaction(ctx, func(tx Store) error {
				r := &models.Restaurant{Name: "Ghost", KitchenType: "None", City: "Nowhere", UF: "NA", Contact: "12345678", IsActive: true}
				if err := tx.CreateRestaurant(ctx, r); err != nil {
					return err
				}
				id = r.ID
				return boom
			})
			assert.ErrorIs(t, err, boom)
			require.NotZero(t, id)

			_, err = s.FindActiveRestaurant(ctx, id)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestUsers(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			u := &models.User{Name: "Ana", Email: "ana@example.com", Password: "secret1"}
			require.NoError(t, s.CreateUser(ctx, u))
			assert.NotZero(t, u.ID)
			assert.NotEqual(t, "secret1", u.Password, "password is hashed on insert")

			got, err := s.FindUserByEmail(ctx, "ana@example.com")
			require.NoError(t, err)
			assert.Equal(t, u.ID, got.ID)
			assert.Equal(t, u.Password, got.Password)

			err = s.CreateUser(ctx, &models.User{Name: "Ana 2", Email: "ana@example.com", Password: "secret2"})
			assert.ErrorIs(t, err, ErrDuplicate)

			_, err = s.FindUserByEmail(ctx, "nobody@example.com")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}
