package response

import "cinema-catalog/internal/data/entity"

type PersonResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func PeopleToResponse(people []*entity.Person) []PersonResponse {
	out := make([]PersonResponse, len(people))
	for i, p := range people {
		out[i] = PersonResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		}
	}
	return out
}
