package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sbilibin2017/lightbnb/internal/models"
	"github.com/sbilibin2017/lightbnb/internal/services"
)

const usage = `usage: lightbnb [-c config.env] <command> [flags]

commands:
  user-by-email  -email
  user-by-id     -id
  add-user       -name -email -password
  reservations   -guest [-limit]
  search         [-city] [-owner] [-min-price] [-max-price] [-min-rating] [-limit]
  add-property   -owner -title ... (see add-property -h)
  version`

var errUsage = errors.New("invalid usage")

// dataAccess is the public surface of the data access layer.
type dataAccess interface {
	GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetUserByID(ctx context.Context, id int64) (*models.UserDB, error)
	AddUser(ctx context.Context, user models.NewUser) (*models.UserDB, error)
	ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error)
	SearchProperties(ctx context.Context, filters models.PropertyFilters, limit int) ([]models.PropertyListing, error)
	AddProperty(ctx context.Context, property models.NewProperty) (*models.PropertyDB, error)
}

// dal groups the three services behind one value.
type dal struct {
	*services.UserService
	*services.ReservationService
	*services.PropertyService
}

// execute parses the flags of command, runs it and writes the result to out as JSON.
func execute(ctx context.Context, d dataAccess, command string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var result any
	var runCmd func() error

	switch command {
	case "user-by-email":
		email := fs.String("email", "", "user email")
		runCmd = func() (err error) {
			result, err = d.GetUserByEmail(ctx, *email)
			return err
		}

	case "user-by-id":
		id := fs.Int64("id", 0, "user id")
		runCmd = func() (err error) {
			result, err = d.GetUserByID(ctx, *id)
			return err
		}

	case "add-user":
		var u models.NewUser
		fs.StringVar(&u.Name, "name", "", "user name")
		fs.StringVar(&u.Email, "email", "", "user email")
		fs.StringVar(&u.Password, "password", "", "password, already hashed")
		runCmd = func() (err error) {
			result, err = d.AddUser(ctx, u)
			return err
		}

	case "reservations":
		guest := fs.Int64("guest", 0, "guest user id")
		limit := fs.Int("limit", 10, "maximum number of reservations")
		runCmd = func() (err error) {
			result, err = d.ListReservationsForGuest(ctx, *guest, *limit)
			return err
		}

	case "search":
		city := fs.String("city", "", "city substring, case-insensitive")
		owner := fs.Int64("owner", 0, "owner user id")
		minPrice := fs.Int64("min-price", 0, "minimum price per night in cents")
		maxPrice := fs.Int64("max-price", 0, "maximum price per night in cents")
		minRating := fs.Float64("min-rating", 0, "minimum average rating")
		limit := fs.Int("limit", 10, "maximum number of properties")
		runCmd = func() (err error) {
			set := map[string]bool{}
			fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

			var filters models.PropertyFilters
			if set["city"] {
				filters.City = city
			}
			if set["owner"] {
				filters.OwnerID = owner
			}
			if set["min-price"] {
				filters.MinimumPricePerNight = minPrice
			}
			if set["max-price"] {
				filters.MaximumPricePerNight = maxPrice
			}
			if set["min-rating"] {
				filters.MinimumRating = minRating
			}
			result, err = d.SearchProperties(ctx, filters, *limit)
			return err
		}

	case "add-property":
		var p models.NewProperty
		fs.Int64Var(&p.OwnerID, "owner", 0, "owner user id")
		fs.StringVar(&p.Title, "title", "", "title")
		fs.StringVar(&p.Description, "description", "", "description")
		fs.StringVar(&p.ThumbnailPhotoURL, "thumbnail", "", "thumbnail photo url")
		fs.StringVar(&p.CoverPhotoURL, "cover", "", "cover photo url")
		fs.Int64Var(&p.CostPerNight, "cost", 0, "cost per night")
		fs.IntVar(&p.ParkingSpaces, "parking", 0, "parking spaces")
		fs.IntVar(&p.NumberOfBathrooms, "bathrooms", 0, "number of bathrooms")
		fs.IntVar(&p.NumberOfBedrooms, "bedrooms", 0, "number of bedrooms")
		fs.StringVar(&p.Country, "country", "", "country")
		fs.StringVar(&p.Street, "street", "", "street")
		fs.StringVar(&p.City, "city", "", "city")
		fs.StringVar(&p.Province, "province", "", "province")
		fs.StringVar(&p.PostCode, "post-code", "", "post code")
		runCmd = func() (err error) {
			result, err = d.AddProperty(ctx, p)
			return err
		}

	default:
		return fmt.Errorf("%w: unknown command %q\n%s", errUsage, command, usage)
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, command, err)
	}

	if err := runCmd(); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
