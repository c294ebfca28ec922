package bar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/avolkov/barcounter/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	serverKeyPrefix        = "server:"
	guildServerKeyPrefix   = "guild_server:"
	personKeyPrefix        = "person:"
	serverPersonsKeyPrefix = "server_persons:"
	drinkKeyPrefix         = "drink:"
	serverDrinksKeyPrefix  = "server_drinks:"

	// serversKey indexes every known server ID
	serversKey = "servers"
)

var (
	// ErrServerNotFound is returned when a server is not found
	ErrServerNotFound = errors.New("server not found")

	// ErrPersonNotFound is returned when a person is not found
	ErrPersonNotFound = errors.New("person not found")

	// ErrDrinkNotFound is returned when a drink is not found
	ErrDrinkNotFound = errors.New("drink not found")

	// ErrDrinkExists is returned when a drink name is already taken on a server
	ErrDrinkExists = errors.New("drink already exists")
)

// Config holds configuration for the Redis bar repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed bar repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func serverKey(serverID string) string {
	return fmt.Sprintf("%s%s", serverKeyPrefix, serverID)
}

func guildServerKey(guildID string) string {
	return fmt.Sprintf("%s%s", guildServerKeyPrefix, guildID)
}

func personKey(serverID, userID string) string {
	return fmt.Sprintf("%s%s:%s", personKeyPrefix, serverID, userID)
}

func serverPersonsKey(serverID string) string {
	return fmt.Sprintf("%s%s", serverPersonsKeyPrefix, serverID)
}

func drinkKey(serverID, name string) string {
	return fmt.Sprintf("%s%s:%s", drinkKeyPrefix, serverID, name)
}

func serverDrinksKey(serverID string) string {
	return fmt.Sprintf("%s%s", serverDrinksKeyPrefix, serverID)
}

// SaveServer persists a server row, its guild index and the global index
func (r *redisRepository) SaveServer(ctx context.Context, input *SaveServerInput) error {
	if input == nil || input.Server == nil {
		return errors.New("input and server cannot be nil")
	}

	server := input.Server
	if server.ID == "" || server.GuildID == "" {
		return errors.New("server ID and guild ID cannot be empty")
	}

	serverJSON, err := json.Marshal(server)
	if err != nil {
		return fmt.Errorf("failed to marshal server: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, serverKey(server.ID), serverJSON, 0)
	pipe.Set(ctx, guildServerKey(server.GuildID), server.ID, 0)
	pipe.SAdd(ctx, serversKey, server.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save server: %w", err)
	}

	return nil
}

// GetServerByGuild retrieves the server row for a guild
func (r *redisRepository) GetServerByGuild(ctx context.Context, input *GetServerByGuildInput) (*models.Server, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	serverID, err := r.client.Get(ctx, guildServerKey(input.GuildID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server index: %w", err)
	}

	serverJSON, err := r.client.Get(ctx, serverKey(serverID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	var server models.Server
	if err := json.Unmarshal([]byte(serverJSON), &server); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server: %w", err)
	}

	return &server, nil
}

// ListServerIDs returns every known server ID
func (r *redisRepository) ListServerIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, serversKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return ids, nil
}

// DeleteServer removes a server and every person and drink row under it
func (r *redisRepository) DeleteServer(ctx context.Context, input *DeleteServerInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	server, err := r.GetServerByGuild(ctx, &GetServerByGuildInput{GuildID: input.GuildID})
	if err != nil {
		return err
	}

	userIDs, err := r.client.SMembers(ctx, serverPersonsKey(server.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list persons for cascade: %w", err)
	}

	drinkNames, err := r.client.SMembers(ctx, serverDrinksKey(server.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list drinks for cascade: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, userID := range userIDs {
		pipe.Del(ctx, personKey(server.ID, userID))
	}
	for _, name := range drinkNames {
		pipe.Del(ctx, drinkKey(server.ID, name))
	}
	pipe.Del(ctx, serverPersonsKey(server.ID))
	pipe.Del(ctx, serverDrinksKey(server.ID))
	pipe.Del(ctx, serverKey(server.ID))
	pipe.Del(ctx, guildServerKey(server.GuildID))
	pipe.SRem(ctx, serversKey, server.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
	}

	return nil
}

// GetPerson retrieves one member's row for a server
func (r *redisRepository) GetPerson(ctx context.Context, input *GetPersonInput) (*models.Person, error) {
	if input == nil || input.ServerID == "" || input.UserID == "" {
		return nil, errors.New("input, server ID and user ID cannot be empty")
	}

	personJSON, err := r.client.Get(ctx, personKey(input.ServerID, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	var person models.Person
	if err := json.Unmarshal([]byte(personJSON), &person); err != nil {
		return nil, fmt.Errorf("failed to unmarshal person: %w", err)
	}

	return &person, nil
}

// SavePerson persists a person row and its membership index
func (r *redisRepository) SavePerson(ctx context.Context, input *SavePersonInput) error {
	if input == nil || input.Person == nil {
		return errors.New("input and person cannot be nil")
	}

	person := input.Person
	if person.ServerID == "" || person.UserID == "" {
		return errors.New("person server ID and user ID cannot be empty")
	}

	personJSON, err := json.Marshal(person)
	if err != nil {
		return fmt.Errorf("failed to marshal person: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, personKey(person.ServerID, person.UserID), personJSON, 0)
	pipe.SAdd(ctx, serverPersonsKey(person.ServerID), person.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}

	return nil
}

// SavePersons persists a batch of person rows in one round trip
func (r *redisRepository) SavePersons(ctx context.Context, input *SavePersonsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Persons) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, person := range input.Persons {
		personJSON, err := json.Marshal(person)
		if err != nil {
			return fmt.Errorf("failed to marshal person %s: %w", person.UserID, err)
		}
		pipe.Set(ctx, personKey(person.ServerID, person.UserID), personJSON, 0)
		pipe.SAdd(ctx, serverPersonsKey(person.ServerID), person.UserID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save persons: %w", err)
	}

	return nil
}

// ListPersons retrieves every person row of a server
func (r *redisRepository) ListPersons(ctx context.Context, input *ListPersonsInput) (*ListPersonsOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, errors.New("input and server ID cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, serverPersonsKey(input.ServerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list person IDs: %w", err)
	}

	if len(userIDs) == 0 {
		return &ListPersonsOutput{Persons: []*models.Person{}}, nil
	}

	pipe := r.client.Pipeline()
	personCommands := make(map[string]*redis.StringCmd, len(userIDs))
	for _, userID := range userIDs {
		personCommands[userID] = pipe.Get(ctx, personKey(input.ServerID, userID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get persons: %w", err)
	}

	persons := make([]*models.Person, 0, len(userIDs))
	for userID, cmd := range personCommands {
		personJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Person row deleted between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get person %s: %w", userID, err)
		}

		var person models.Person
		if err := json.Unmarshal([]byte(personJSON), &person); err != nil {
			return nil, fmt.Errorf("failed to unmarshal person %s: %w", userID, err)
		}

		persons = append(persons, &person)
	}

	return &ListPersonsOutput{Persons: persons}, nil
}

// CreateDrink registers a new drink. The per-server name index is the
// uniqueness constraint: a name that is already a member means the drink
// exists and nothing is written.
func (r *redisRepository) CreateDrink(ctx context.Context, input *CreateDrinkInput) error {
	if input == nil || input.Drink == nil {
		return errors.New("input and drink cannot be nil")
	}

	drink := input.Drink
	if drink.ServerID == "" || drink.Name == "" {
		return errors.New("drink server ID and name cannot be empty")
	}

	added, err := r.client.SAdd(ctx, serverDrinksKey(drink.ServerID), drink.Name).Result()
	if err != nil {
		return fmt.Errorf("failed to register drink name: %w", err)
	}
	if added == 0 {
		return ErrDrinkExists
	}

	if err := r.writeDrink(ctx, drink); err != nil {
		// Roll the name registration back so a failed write does not
		// leave a phantom menu entry
		r.client.SRem(ctx, serverDrinksKey(drink.ServerID), drink.Name)
		return err
	}

	return nil
}

// SaveDrink overwrites an existing drink row
func (r *redisRepository) SaveDrink(ctx context.Context, input *SaveDrinkInput) error {
	if input == nil || input.Drink == nil {
		return errors.New("input and drink cannot be nil")
	}

	return r.writeDrink(ctx, input.Drink)
}

func (r *redisRepository) writeDrink(ctx context.Context, drink *models.Drink) error {
	drinkJSON, err := json.Marshal(drink)
	if err != nil {
		return fmt.Errorf("failed to marshal drink: %w", err)
	}

	if err := r.client.Set(ctx, drinkKey(drink.ServerID, drink.Name), drinkJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save drink: %w", err)
	}

	return nil
}

// GetDrink retrieves a drink by server and name
func (r *redisRepository) GetDrink(ctx context.Context, input *GetDrinkInput) (*models.Drink, error) {
	if input == nil || input.ServerID == "" || input.Name == "" {
		return nil, errors.New("input, server ID and name cannot be empty")
	}

	drinkJSON, err := r.client.Get(ctx, drinkKey(input.ServerID, input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	var drink models.Drink
	if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drink: %w", err)
	}

	return &drink, nil
}

// DeleteDrink removes a drink from a server's menu
func (r *redisRepository) DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error {
	if input == nil || input.ServerID == "" || input.Name == "" {
		return errors.New("input, server ID and name cannot be empty")
	}

	removed, err := r.client.SRem(ctx, serverDrinksKey(input.ServerID), input.Name).Result()
	if err != nil {
		return fmt.Errorf("failed to unregister drink name: %w", err)
	}
	if removed == 0 {
		return ErrDrinkNotFound
	}

	if err := r.client.Del(ctx, drinkKey(input.ServerID, input.Name)).Err(); err != nil {
		return fmt.Errorf("failed to delete drink: %w", err)
	}

	return nil
}

// ListDrinks retrieves a server's menu sorted by name
func (r *redisRepository) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, errors.New("input and server ID cannot be empty")
	}

	names, err := r.client.SMembers(ctx, serverDrinksKey(input.ServerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list drink names: %w", err)
	}

	if len(names) == 0 {
		return &ListDrinksOutput{Drinks: []*models.Drink{}}, nil
	}

	pipe := r.client.Pipeline()
	drinkCommands := make(map[string]*redis.StringCmd, len(names))
	for _, name := range names {
		drinkCommands[name] = pipe.Get(ctx, drinkKey(input.ServerID, name))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	drinks := make([]*models.Drink, 0, len(names))
	for name, cmd := range drinkCommands {
		drinkJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get drink %s: %w", name, err)
		}

		var drink models.Drink
		if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink %s: %w", name, err)
		}

		drinks = append(drinks, &drink)
	}

	sort.Slice(drinks, func(i, j int) bool { return drinks[i].Name < drinks[j].Name })

	return &ListDrinksOutput{Drinks: drinks}, nil
}

// CountDrinks returns the number of drinks on a server's menu
func (r *redisRepository) CountDrinks(ctx context.Context, input *CountDrinksInput) (int, error) {
	if input == nil || input.ServerID == "" {
		return 0, errors.New("input and server ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, serverDrinksKey(input.ServerID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count drinks: %w", err)
	}

	return int(count), nil
}

// SaveConsumption persists a person and a drink as one atomic unit
func (r *redisRepository) SaveConsumption(ctx context.Context, input *SaveConsumptionInput) error {
	if input == nil || input.Person == nil || input.Drink == nil {
		return errors.New("input, person and drink cannot be nil")
	}

	personJSON, err := json.Marshal(input.Person)
	if err != nil {
		return fmt.Errorf("failed to marshal person: %w", err)
	}

	drinkJSON, err := json.Marshal(input.Drink)
	if err != nil {
		return fmt.Errorf("failed to marshal drink: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, personKey(input.Person.ServerID, input.Person.UserID), personJSON, 0)
	pipe.SAdd(ctx, serverPersonsKey(input.Person.ServerID), input.Person.UserID)
	pipe.Set(ctx, drinkKey(input.Drink.ServerID, input.Drink.Name), drinkJSON, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save consumption: %w", err)
	}

	return nil
}

// ReplaceDrinks atomically rewrites the server row and its whole menu
func (r *redisRepository) ReplaceDrinks(ctx context.Context, input *ReplaceDrinksInput) error {
	if input == nil || input.Server == nil {
		return errors.New("input and server cannot be nil")
	}

	server := input.Server

	oldNames, err := r.client.SMembers(ctx, serverDrinksKey(server.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list drinks for replace: %w", err)
	}

	serverJSON, err := json.Marshal(server)
	if err != nil {
		return fmt.Errorf("failed to marshal server: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, serverKey(server.ID), serverJSON, 0)
	for _, name := range oldNames {
		pipe.Del(ctx, drinkKey(server.ID, name))
	}
	pipe.Del(ctx, serverDrinksKey(server.ID))
	for _, drink := range input.Drinks {
		drinkJSON, err := json.Marshal(drink)
		if err != nil {
			return fmt.Errorf("failed to marshal drink %s: %w", drink.Name, err)
		}
		pipe.Set(ctx, drinkKey(server.ID, drink.Name), drinkJSON, 0)
		pipe.SAdd(ctx, serverDrinksKey(server.ID), drink.Name)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace drinks: %w", err)
	}

	return nil
}

// RestockServer resets portions for one drink or the whole menu
func (r *redisRepository) RestockServer(ctx context.Context, input *RestockServerInput) (*RestockServerOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, errors.New("input and server ID cannot be empty")
	}

	if input.Name != "" {
		drink, err := r.GetDrink(ctx, &GetDrinkInput{ServerID: input.ServerID, Name: input.Name})
		if err != nil {
			return nil, err
		}

		drink.PortionsLeft = drink.PortionsPerDay
		if err := r.writeDrink(ctx, drink); err != nil {
			return nil, err
		}

		return &RestockServerOutput{Count: 1}, nil
	}

	listed, err := r.ListDrinks(ctx, &ListDrinksInput{ServerID: input.ServerID})
	if err != nil {
		return nil, err
	}

	if len(listed.Drinks) == 0 {
		return &RestockServerOutput{Count: 0}, nil
	}

	pipe := r.client.TxPipeline()
	for _, drink := range listed.Drinks {
		drink.PortionsLeft = drink.PortionsPerDay
		drinkJSON, err := json.Marshal(drink)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal drink %s: %w", drink.Name, err)
		}
		pipe.Set(ctx, drinkKey(drink.ServerID, drink.Name), drinkJSON, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to restock drinks: %w", err)
	}

	return &RestockServerOutput{Count: len(listed.Drinks)}, nil
}
