package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an admin with the same
	// username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoAdminWasFound is returned when no admin matches the lookup key.
	ErrNoAdminWasFound = errors.New("no admin was found")

	// ErrProductNotFound is returned when a product id matches no row.
	ErrProductNotFound = errors.New("product was not found")

	// ErrCategoryNotFound is returned when a category id matches no row.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategoryAlreadyExists is returned when a category name is taken.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrUnknownCategory is returned when a product references a category
	// that does not exist.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnsupportedDriver is returned by [NewDB] for driver names other
	// than "pgx" and "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Upload registry errors.
var (
	// ErrUploadNotFound is returned by Lookup for ids that were never issued.
	ErrUploadNotFound = errors.New("upload was not found")

	// ErrRegistrationFailed is returned when a payload cannot be registered:
	// its media type cannot be parsed or the random source failed. It is
	// not retryable for the same payload.
	ErrRegistrationFailed = errors.New("upload registration failed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
