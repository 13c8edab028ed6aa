package fixtures

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/surajravi/user-todo-api/internal/logger"
	"github.com/surajravi/user-todo-api/internal/models"
)

// Data is the predefined dataset inserted into an empty store at startup.
var Data = []models.UserInput{
	{FirstName: "Suraj", LastName: "Ravichandran", Username: "surajravi"},
	{FirstName: "Aniket", LastName: "Sharma", Username: "asharma"},
	{FirstName: "Luckas", LastName: "Friendel", Username: "luckas_friendel"},
}

// UserCounter reports how many user documents exist.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// UserInserter inserts user records.
type UserInserter interface {
	Insert(ctx context.Context, user models.UserDB) error
}

// SeedIfEmpty populates the predefined dataset when the user collection is
// observed empty. The check-then-insert sequence is best-effort: two
// process instances starting at the same moment can both observe zero and
// both seed. Partial seeding is not rolled back; a failed insert aborts
// and the error propagates to the caller.
func SeedIfEmpty(ctx context.Context, counter UserCounter, inserter UserInserter) error {
	n, err := counter.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n != 0 {
		logger.Log.Infow("fixtures skipped, collection already populated", "count", n)
		return nil
	}

	for _, input := range Data {
		if err := input.Validate(); err != nil {
			return fmt.Errorf("fixture %q: %w", input.Username, err)
		}
		user := models.UserDB{
			UserID:    uuid.New(),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Username:  input.Username,
		}
		if err := inserter.Insert(ctx, user); err != nil {
			return fmt.Errorf("insert fixture %q: %w", input.Username, err)
		}
	}

	logger.Log.Infow("fixtures seeded", "count", len(Data))
	return nil
}
