package inject_test

// Shared test types used across test files.

type DB struct {
	DSN string
}

type Logger struct {
	Level string
}

type BasketService struct {
	DB     *DB
	Logger *Logger
}

type UserService struct {
	DB     *DB
	Logger *Logger
	Basket *BasketService
}

func newWiredUser() *UserService {
	db := &DB{DSN: "postgres://"}
	logger := &Logger{Level: "info"}
	return &UserService{
		DB:     db,
		Logger: logger,
		Basket: &BasketService{DB: db, Logger: logger},
	}
}

// abc mirrors the canonical example: a is set, b and c are absent.
type abc struct {
	a string
	b *string
	c *int
}

func newABC() *abc { return &abc{a: "x"} }

// Dep is a string-backed enumeration of abc's fields.
type Dep string

const (
	DepA Dep = "a"
	DepB Dep = "b"
	DepC Dep = "c"
)
