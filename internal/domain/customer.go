package domain

import "fmt"

type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// String renders the customer the way list views show it.
func (c Customer) String() string {
	return fmt.Sprintf("%s - %s - %s", c.Name, c.Email, c.Phone)
}
