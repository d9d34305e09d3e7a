package repository

import (
	"cinema-catalog/internal/data/entity"
	"cinema-catalog/pkg/database"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type PersonRepository interface {
	// FindByMovieID returns the people attached to a movie through the given
	// relation, in association insertion order. The person's own role tag
	// is not checked.
	FindByMovieID(ctx context.Context, movieID int64, relation entity.PersonRelation) ([]*entity.Person, error)
}

type personRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPersonRepository(db database.PgxIface, log *zap.Logger) PersonRepository {
	return &personRepository{
		db:  db,
		log: log.With(zap.String("repository", "person")),
	}
}

func (r *personRepository) FindByMovieID(ctx context.Context, movieID int64, relation entity.PersonRelation) ([]*entity.Person, error) {
	table := relation.Table()
	if table == "" {
		return nil, fmt.Errorf("unknown person relation %q", relation)
	}

	// table comes from a closed set, never from request input
	query := fmt.Sprintf(`
		SELECT p.id, p.first_name, p.last_name, p.role, p.created_at, p.updated_at
		FROM people p
		INNER JOIN %s mp ON p.id = mp.person_id
		WHERE mp.movie_id = $1
		ORDER BY mp.id
	`, table)

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find people by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.String("relation", string(relation)),
		)
		return nil, fmt.Errorf("find %s by movie id: %w", relation, err)
	}
	defer rows.Close()

	var people []*entity.Person
	for rows.Next() {
		var person entity.Person
		err := rows.Scan(
			&person.ID,
			&person.FirstName,
			&person.LastName,
			&person.Role,
			&person.CreatedAt,
			&person.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan person row", zap.Error(err))
			return nil, fmt.Errorf("scan person row: %w", err)
		}
		people = append(people, &person)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate person rows: %w", err)
	}

	return people, nil
}
