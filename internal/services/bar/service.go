package bar

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/avolkov/barcounter/internal/common/uuid"
	"github.com/avolkov/barcounter/internal/ledger"
	"github.com/avolkov/barcounter/internal/locale"
	"github.com/avolkov/barcounter/internal/models"
	barRepo "github.com/avolkov/barcounter/internal/repositories/bar"
)

const (
	overdoseThreshold    = 100
	preOverdoseThreshold = 80
)

// Config holds configuration for the bar service
type Config struct {
	// Repository is the persistence collaborator
	Repository barRepo.Repository

	// Catalogs is the loaded locale catalog set
	Catalogs *locale.Catalogs

	// UUIDGenerator mints row identifiers
	UUIDGenerator uuid.UUID

	// MaxPortionSize bounds a drink's portion size
	MaxPortionSize int

	// MaxPortionsPerDay bounds a drink's daily stock
	MaxPortionsPerDay int

	// MaxDrinkNameLength bounds a drink's name
	MaxDrinkNameLength int

	// MaxDrinksPerServer caps how many distinct drinks a menu may hold
	MaxDrinksPerServer int
}

// service implements the Service interface
type service struct {
	repo     barRepo.Repository
	catalogs *locale.Catalogs
	uuider   uuid.UUID

	maxPortionSize     int
	maxPortionsPerDay  int
	maxDrinkNameLength int
	maxDrinksPerServer int

	// Per-server mutexes serializing read-modify-write cycles on person
	// and drink rows. The decay job and the command handlers run on
	// separate goroutines; without this a stale bulk write could erase a
	// concurrent consumption.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates a new bar service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Catalogs == nil {
		return nil, ErrNilCatalogs
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	svc := &service{
		repo:               cfg.Repository,
		catalogs:           cfg.Catalogs,
		uuider:             cfg.UUIDGenerator,
		maxPortionSize:     cfg.MaxPortionSize,
		maxPortionsPerDay:  cfg.MaxPortionsPerDay,
		maxDrinkNameLength: cfg.MaxDrinkNameLength,
		maxDrinksPerServer: cfg.MaxDrinksPerServer,
		locks:              make(map[string]*sync.Mutex),
	}

	if svc.maxPortionSize <= 0 {
		svc.maxPortionSize = 2000
	}
	if svc.maxPortionsPerDay <= 0 {
		svc.maxPortionsPerDay = 100
	}
	if svc.maxDrinkNameLength <= 0 {
		svc.maxDrinkNameLength = 64
	}
	if svc.maxDrinksPerServer <= 0 {
		svc.maxDrinksPerServer = 40
	}

	return svc, nil
}

// serverLock returns the mutex guarding one server's ledger and stock
func (s *service) serverLock(serverID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[serverID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[serverID] = lock
	}
	return lock
}

// EnsureServer resolves the server row for a guild. On first contact the
// suggested locale is stored when supported, the default locale otherwise,
// and the locale's default menu is seeded. Later calls return the stored
// row untouched.
func (s *service) EnsureServer(ctx context.Context, input *EnsureServerInput) (*EnsureServerOutput, error) {
	server, err := s.repo.GetServerByGuild(ctx, &barRepo.GetServerByGuildInput{
		GuildID: input.GuildID,
	})
	if err == nil {
		return &EnsureServerOutput{Server: server}, nil
	}
	if !errors.Is(err, barRepo.ErrServerNotFound) {
		return nil, err
	}

	lang := s.catalogs.DefaultLang()
	if suggested := locale.Normalize(input.SuggestedLocale); s.catalogs.Supported(suggested) {
		lang = suggested
	}

	server = &models.Server{
		ID:      s.uuider.NewUUID(),
		GuildID: input.GuildID,
		Lang:    lang,
	}

	if err := s.repo.SaveServer(ctx, &barRepo.SaveServerInput{Server: server}); err != nil {
		return nil, err
	}

	if err := s.seedDefaultDrinks(ctx, server); err != nil {
		return nil, err
	}

	log.Printf("Created server for guild %s with locale %s", input.GuildID, lang)

	return &EnsureServerOutput{Server: server, Created: true}, nil
}

func (s *service) seedDefaultDrinks(ctx context.Context, server *models.Server) error {
	for _, seed := range s.catalogs.DefaultDrinks(server.Lang) {
		err := s.repo.CreateDrink(ctx, &barRepo.CreateDrinkInput{
			Drink: s.drinkFromSeed(server.ID, seed),
		})
		if err != nil && !errors.Is(err, barRepo.ErrDrinkExists) {
			return fmt.Errorf("failed to seed drink %s: %w", seed.Name, err)
		}
	}
	return nil
}

func (s *service) drinkFromSeed(serverID string, seed locale.DefaultDrink) *models.Drink {
	return &models.Drink{
		ID:             s.uuider.NewUUID(),
		ServerID:       serverID,
		Name:           seed.Name,
		Intoxication:   seed.Intoxication,
		PortionSize:    seed.PortionSize,
		PortionsPerDay: seed.PortionsPerDay,
		PortionsLeft:   seed.PortionsPerDay,
	}
}

// RemoveServer deletes a guild's server row with all its persons and
// drinks. An unknown guild is not an error.
func (s *service) RemoveServer(ctx context.Context, input *RemoveServerInput) error {
	err := s.repo.DeleteServer(ctx, &barRepo.DeleteServerInput{GuildID: input.GuildID})
	if errors.Is(err, barRepo.ErrServerNotFound) {
		return nil
	}
	return err
}

// Consume performs the consumption state transition and persists the
// person and drink rows as one atomic unit.
func (s *service) Consume(ctx context.Context, input *ConsumeInput) (*ConsumeOutput, error) {
	ensured, err := s.EnsureServer(ctx, &EnsureServerInput{
		GuildID:         input.GuildID,
		SuggestedLocale: input.SuggestedLocale,
	})
	if err != nil {
		return nil, err
	}
	server := ensured.Server

	lock := s.serverLock(server.ID)
	lock.Lock()
	defer lock.Unlock()

	drink, err := s.repo.GetDrink(ctx, &barRepo.GetDrinkInput{
		ServerID: server.ID,
		Name:     input.DrinkName,
	})
	if err != nil {
		if errors.Is(err, barRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}

	person, err := s.getOrCreatePerson(ctx, server.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Self-heal corrupted state before applying anything
	person.Intoxication = ledger.Normalize(person.Intoxication)

	if drink.PortionsLeft <= 0 {
		return &ConsumeOutput{
			Outcome: models.OutcomeDepleted,
			Level:   person.Intoxication,
			Server:  server,
			Drink:   drink,
		}, nil
	}

	lastPortion := drink.PortionsLeft == 1
	drink.PortionsLeft--
	person.Intoxication = ledger.Apply(person.Intoxication, drink.Intoxication)

	level := person.Intoxication
	var outcome models.Outcome
	switch {
	case level >= overdoseThreshold:
		outcome = models.OutcomeOverdose
		person.Intoxication = 0
	case level > preOverdoseThreshold:
		outcome = models.OutcomePreOverdose
	case lastPortion:
		outcome = models.OutcomeLastPortion
	default:
		outcome = models.OutcomeConsumed
	}

	err = s.repo.SaveConsumption(ctx, &barRepo.SaveConsumptionInput{
		Person: person,
		Drink:  drink,
	})
	if err != nil {
		return nil, err
	}

	return &ConsumeOutput{
		Outcome:     outcome,
		LastPortion: lastPortion,
		Level:       level,
		Server:      server,
		Drink:       drink,
	}, nil
}

func (s *service) getOrCreatePerson(ctx context.Context, serverID, userID string) (*models.Person, error) {
	person, err := s.repo.GetPerson(ctx, &barRepo.GetPersonInput{
		ServerID: serverID,
		UserID:   userID,
	})
	if err == nil {
		return person, nil
	}
	if !errors.Is(err, barRepo.ErrPersonNotFound) {
		return nil, err
	}

	return &models.Person{
		ID:           s.uuider.NewUUID(),
		ServerID:     serverID,
		UserID:       userID,
		Intoxication: 0,
	}, nil
}

// AddDrink validates and registers a new drink. Validation order matters:
// the first failed check decides the user-facing message.
func (s *service) AddDrink(ctx context.Context, input *AddDrinkInput) (*AddDrinkOutput, error) {
	if input.Intoxication < 0 || input.Intoxication > 100 {
		return nil, ErrWrongIntoxication
	}
	if input.PortionSize <= 0 || input.PortionSize > s.maxPortionSize {
		return nil, ErrWrongPortionSize
	}
	if input.PortionsPerDay <= 0 || input.PortionsPerDay > s.maxPortionsPerDay {
		return nil, ErrWrongPortionsPerDay
	}
	if len([]rune(input.Name)) > s.maxDrinkNameLength {
		return nil, ErrNameTooLong
	}

	ensured, err := s.EnsureServer(ctx, &EnsureServerInput{
		GuildID:         input.GuildID,
		SuggestedLocale: input.SuggestedLocale,
	})
	if err != nil {
		return nil, err
	}
	server := ensured.Server

	count, err := s.repo.CountDrinks(ctx, &barRepo.CountDrinksInput{ServerID: server.ID})
	if err != nil {
		return nil, err
	}
	if count >= s.maxDrinksPerServer {
		return nil, ErrTooManyDrinks
	}

	drink := &models.Drink{
		ID:             s.uuider.NewUUID(),
		ServerID:       server.ID,
		Name:           input.Name,
		Intoxication:   input.Intoxication,
		PortionSize:    input.PortionSize,
		PortionsPerDay: input.PortionsPerDay,
		PortionsLeft:   input.PortionsPerDay,
	}

	err = s.repo.CreateDrink(ctx, &barRepo.CreateDrinkInput{Drink: drink})
	if err != nil {
		if errors.Is(err, barRepo.ErrDrinkExists) {
			return nil, ErrDrinkExists
		}
		return nil, err
	}

	return &AddDrinkOutput{Drink: drink}, nil
}

// RemoveDrink removes a drink from a guild's menu
func (s *service) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) error {
	server, err := s.repo.GetServerByGuild(ctx, &barRepo.GetServerByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, barRepo.ErrServerNotFound) {
			return ErrServerNotFound
		}
		return err
	}

	err = s.repo.DeleteDrink(ctx, &barRepo.DeleteDrinkInput{
		ServerID: server.ID,
		Name:     input.Name,
	})
	if errors.Is(err, barRepo.ErrDrinkNotFound) {
		return ErrDrinkNotFound
	}
	return err
}

// ListDrinks returns a guild's menu
func (s *service) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	ensured, err := s.EnsureServer(ctx, &EnsureServerInput{
		GuildID:         input.GuildID,
		SuggestedLocale: input.SuggestedLocale,
	})
	if err != nil {
		return nil, err
	}

	listed, err := s.repo.ListDrinks(ctx, &barRepo.ListDrinksInput{ServerID: ensured.Server.ID})
	if err != nil {
		return nil, err
	}

	return &ListDrinksOutput{
		Server: ensured.Server,
		Drinks: listed.Drinks,
	}, nil
}

// Restock resets stock for one drink or the whole menu
func (s *service) Restock(ctx context.Context, input *RestockInput) (*RestockOutput, error) {
	server, err := s.repo.GetServerByGuild(ctx, &barRepo.GetServerByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, barRepo.ErrServerNotFound) {
			return nil, ErrServerNotFound
		}
		return nil, err
	}

	out, err := s.restockServer(ctx, server.ID, input.Name)
	if err != nil {
		if errors.Is(err, barRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}

	return &RestockOutput{Count: out.Count}, nil
}

// restockServer resets stock under the server's lock so the rewrite
// cannot interleave with a concurrent consumption
func (s *service) restockServer(ctx context.Context, serverID, name string) (*barRepo.RestockServerOutput, error) {
	lock := s.serverLock(serverID)
	lock.Lock()
	defer lock.Unlock()

	return s.repo.RestockServer(ctx, &barRepo.RestockServerInput{
		ServerID: serverID,
		Name:     name,
	})
}

// SetLanguage switches a guild's locale. The server row update, the
// removal of the old menu and the reseed from the new locale's defaults
// apply as one atomic unit.
func (s *service) SetLanguage(ctx context.Context, input *SetLanguageInput) (*SetLanguageOutput, error) {
	if !s.catalogs.Supported(input.Lang) {
		return nil, ErrUnknownLanguage
	}

	ensured, err := s.EnsureServer(ctx, &EnsureServerInput{
		GuildID:         input.GuildID,
		SuggestedLocale: input.SuggestedLocale,
	})
	if err != nil {
		return nil, err
	}
	server := ensured.Server
	server.Lang = input.Lang

	seeds := s.catalogs.DefaultDrinks(input.Lang)
	drinks := make([]*models.Drink, 0, len(seeds))
	for _, seed := range seeds {
		drinks = append(drinks, s.drinkFromSeed(server.ID, seed))
	}

	lock := s.serverLock(server.ID)
	lock.Lock()
	err = s.repo.ReplaceDrinks(ctx, &barRepo.ReplaceDrinksInput{
		Server: server,
		Drinks: drinks,
	})
	lock.Unlock()
	if err != nil {
		return nil, err
	}

	log.Printf("Updated locale on guild %s to %s", input.GuildID, input.Lang)

	return &SetLanguageOutput{Server: server}, nil
}

// DecayTick lowers every person's intoxication by the decay step. Only
// rows whose level actually changes are written back.
func (s *service) DecayTick(ctx context.Context, input *DecayTickInput) error {
	step := input.Step
	if step <= 0 {
		step = 1
	}

	serverIDs, err := s.repo.ListServerIDs(ctx)
	if err != nil {
		return err
	}

	for _, serverID := range serverIDs {
		if err := s.decayServer(ctx, serverID, step); err != nil {
			return err
		}
	}

	return nil
}

// decayServer runs one decay pass over a server under its lock, so the
// read-then-write cannot overwrite a consumption landing in between
func (s *service) decayServer(ctx context.Context, serverID string, step int) error {
	lock := s.serverLock(serverID)
	lock.Lock()
	defer lock.Unlock()

	listed, err := s.repo.ListPersons(ctx, &barRepo.ListPersonsInput{ServerID: serverID})
	if err != nil {
		return err
	}

	changed := make([]*models.Person, 0, len(listed.Persons))
	for _, person := range listed.Persons {
		decayed := ledger.DecayStep(person.Intoxication, step)
		if decayed != person.Intoxication {
			person.Intoxication = decayed
			changed = append(changed, person)
		}
	}

	if len(changed) == 0 {
		return nil
	}

	return s.repo.SavePersons(ctx, &barRepo.SavePersonsInput{Persons: changed})
}

// RestockAllServers resets stock on every server's menu
func (s *service) RestockAllServers(ctx context.Context) (*RestockAllServersOutput, error) {
	serverIDs, err := s.repo.ListServerIDs(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, serverID := range serverIDs {
		out, err := s.restockServer(ctx, serverID, "")
		if err != nil {
			return nil, err
		}
		total += out.Count
	}

	return &RestockAllServersOutput{Count: total}, nil
}
