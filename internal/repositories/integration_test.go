package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/lightbnb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const lightbnbSchema = `
	CREATE TABLE users (
		id SERIAL PRIMARY KEY NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	);

	CREATE TABLE properties (
		id SERIAL PRIMARY KEY NOT NULL,
		owner_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		thumbnail_photo_url VARCHAR(255) NOT NULL,
		cover_photo_url VARCHAR(255) NOT NULL,
		cost_per_night INTEGER NOT NULL DEFAULT 0,
		parking_spaces INTEGER NOT NULL DEFAULT 0,
		number_of_bathrooms INTEGER NOT NULL DEFAULT 0,
		number_of_bedrooms INTEGER NOT NULL DEFAULT 0,
		country VARCHAR(255) NOT NULL,
		street VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		province VARCHAR(255) NOT NULL,
		post_code VARCHAR(255) NOT NULL
	);

	CREATE TABLE reservations (
		id SERIAL PRIMARY KEY NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		guest_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE property_reviews (
		id SERIAL PRIMARY KEY NOT NULL,
		guest_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		reservation_id INTEGER NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
		rating SMALLINT NOT NULL DEFAULT 0,
		message TEXT
	);
`

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "lightbnb", "POSTGRES_USER": "vagrant"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://vagrant:password@%s:%d/lightbnb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(lightbnbSchema)
	require.NoError(t, err)

	return db
}

type fixture struct {
	owner      *models.UserDB
	guest      *models.UserDB
	properties []*models.PropertyDB
}

// seed creates one owner, one guest and a property per city with the given
// nightly cost and review ratings. Every property gets a reservation by the guest.
func seed(t *testing.T, db *sqlx.DB, listings []struct {
	title   string
	city    string
	cost    int64
	ratings []int
}) fixture {
	t.Helper()
	ctx := context.Background()

	users := NewUserWriteRepository(db)
	props := NewPropertyWriteRepository(db)

	owner, err := users.Save(ctx, models.NewUser{Name: "Owner", Email: "owner@example.com", Password: "hash"})
	require.NoError(t, err)
	guest, err := users.Save(ctx, models.NewUser{Name: "Guest", Email: "guest@example.com", Password: "hash"})
	require.NoError(t, err)

	f := fixture{owner: owner, guest: guest}
	for _, l := range listings {
		p, err := props.Save(ctx, models.NewProperty{
			OwnerID: owner.ID, Title: l.title, Description: "d",
			ThumbnailPhotoURL: "t", CoverPhotoURL: "c", CostPerNight: l.cost,
			Country: "Canada", Street: "s", City: l.city, Province: "p", PostCode: "pc",
		})
		require.NoError(t, err)
		f.properties = append(f.properties, p)

		var reservationID int64
		err = db.Get(&reservationID,
			`INSERT INTO reservations (start_date, end_date, property_id, guest_id)
			 VALUES ('2018-09-11', '2018-09-26', $1, $2) RETURNING id`, p.ID, guest.ID)
		require.NoError(t, err)

		for _, rating := range l.ratings {
			_, err = db.Exec(
				`INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating) VALUES ($1, $2, $3, $4)`,
				guest.ID, p.ID, reservationID, rating)
			require.NoError(t, err)
		}
	}
	return f
}

func TestIntegration_Users(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	saved, err := writer.Save(ctx, models.NewUser{Name: "Charlie", Email: "charlie@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	t.Run("ByID returns inserted fields", func(t *testing.T) {
		user, err := reader.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, user)
		assert.Equal(t, "Charlie", user.Name)
		assert.Equal(t, "secret", user.Password)
	})

	t.Run("ByEmail", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "charlie@example.com")
		require.NoError(t, err)
		assert.Equal(t, saved.ID, user.ID)
	})

	t.Run("absent email", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "nobody@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := writer.Save(ctx, models.NewUser{Name: "Other", Email: "charlie@example.com", Password: "x"})

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "23505", pgErr.Code)
		assert.Equal(t, "users", pgErr.TableName)
		assert.Equal(t, "users_email_key", pgErr.ConstraintName)
	})
}

func TestIntegration_SearchProperties(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	f := seed(t, db, []struct {
		title   string
		city    string
		cost    int64
		ratings []int
	}{
		{"Harbour view", "Vancouver", 120, []int{5, 4}},
		{"Cheap room", "Vancouver", 40, []int{2}},
		{"North shore", "North Vancouver", 80, []int{4, 4}},
		{"Downtown", "Toronto", 60, []int{5}},
		{"No reviews", "Vancouver", 90, nil},
	})
	repo := NewPropertyReadRepository(db)

	t.Run("city substring is case-insensitive", func(t *testing.T) {
		listings, err := repo.Search(ctx, models.PropertyFilters{City: ptr("van")}, 5)
		require.NoError(t, err)
		assert.Len(t, listings, 4)
		for _, l := range listings {
			assert.Contains(t, strings.ToLower(l.City), "van")
		}
	})

	t.Run("limit is honoured", func(t *testing.T) {
		listings, err := repo.Search(ctx, models.PropertyFilters{City: ptr("van")}, 2)
		require.NoError(t, err)
		assert.Len(t, listings, 2)
	})

	t.Run("minimum rating orders by cost", func(t *testing.T) {
		listings, err := repo.Search(ctx, models.PropertyFilters{MinimumRating: ptr(4.0)}, 10)
		require.NoError(t, err)
		require.Len(t, listings, 3)
		for _, l := range listings {
			require.NotNil(t, l.AverageRating)
			assert.GreaterOrEqual(t, *l.AverageRating, 4.0)
		}
		assert.True(t, sort.SliceIsSorted(listings, func(i, j int) bool {
			return listings[i].CostPerNight < listings[j].CostPerNight
		}))
	})

	t.Run("price bounds are divided by 100", func(t *testing.T) {
		listings, err := repo.Search(ctx, models.PropertyFilters{
			MinimumPricePerNight: ptr(int64(5000)),
			MaximumPricePerNight: ptr(int64(10000)),
		}, 10)
		require.NoError(t, err)
		require.Len(t, listings, 3)
		for _, l := range listings {
			assert.GreaterOrEqual(t, l.CostPerNight, int64(50))
			assert.LessOrEqual(t, l.CostPerNight, int64(100))
		}
	})

	t.Run("property without reviews has nil rating", func(t *testing.T) {
		listings, err := repo.Search(ctx, models.PropertyFilters{City: ptr("vancouver"), MinimumPricePerNight: ptr(int64(9000)), MaximumPricePerNight: ptr(int64(9000))}, 10)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "No reviews", listings[0].Title)
		assert.Nil(t, listings[0].AverageRating)
	})

	t.Run("new property is found by owner", func(t *testing.T) {
		added, err := NewPropertyWriteRepository(db).Save(ctx, models.NewProperty{
			OwnerID: f.owner.ID, Title: "Brand new", ThumbnailPhotoURL: "t", CoverPhotoURL: "c",
			CostPerNight: 10, Country: "Canada", Street: "s", City: "Victoria", Province: "BC", PostCode: "pc",
		})
		require.NoError(t, err)

		listings, err := repo.Search(ctx, models.PropertyFilters{OwnerID: &f.owner.ID}, 10)
		require.NoError(t, err)
		var ids []int64
		for _, l := range listings {
			ids = append(ids, l.ID)
		}
		assert.Contains(t, ids, added.ID)
	})
}

func TestIntegration_ListReservationsForGuest(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	listings := make([]struct {
		title   string
		city    string
		cost    int64
		ratings []int
	}, 12)
	for i := range listings {
		listings[i].title = fmt.Sprintf("Property %02d", 12-i)
		listings[i].city = "Calgary"
		listings[i].cost = int64(100 + i)
		listings[i].ratings = []int{3, 5}
	}
	f := seed(t, db, listings)

	// "Property 01" sorts first, so it always survives the cap.
	first := f.properties[len(f.properties)-1]
	require.Equal(t, "Property 01", first.Title)

	var originalID, laterID int64
	require.NoError(t, db.Get(&originalID,
		`SELECT id FROM reservations WHERE property_id = $1 AND guest_id = $2`, first.ID, f.guest.ID))
	require.NoError(t, db.Get(&laterID,
		`INSERT INTO reservations (start_date, end_date, property_id, guest_id)
		 VALUES ('2019-01-01', '2019-01-05', $1, $2) RETURNING id`, first.ID, f.guest.ID))
	require.Greater(t, laterID, originalID)

	repo := NewReservationReadRepository(db)

	list, err := repo.ListByGuestID(ctx, f.guest.ID, 50)
	require.NoError(t, err)
	require.Len(t, list, MaxGuestReservations)

	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool { return list[i].Title < list[j].Title }))
	assert.Equal(t, "Property 01", list[0].Title)
	assert.Equal(t, first.ID, list[0].PropertyID)
	assert.Equal(t, originalID, list[0].ID)
	assert.Equal(t, 2018, list[0].StartDate.Year())

	seen := map[int64]bool{}
	for _, r := range list {
		assert.False(t, seen[r.PropertyID], "property %d listed twice", r.PropertyID)
		seen[r.PropertyID] = true
		require.NotNil(t, r.AverageRating)
		assert.InDelta(t, 4.0, *r.AverageRating, 1e-9)
	}

	other, err := repo.ListByGuestID(ctx, f.owner.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}
