package model

// Employee is the identity record from employees.json. Team lists direct
// reports by id; ManagerID is a back-reference resolved by lookup against
// the full collection, never owned here.
type Employee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Manager    string   `json:"manager"`
	ManagerID  string   `json:"manager_id"`
	JoinDate   string   `json:"join_date"`
	Phone      string   `json:"phone"`
	Salary     float64  `json:"salary"`
	Team       []string `json:"team"`
}

// FirstName returns the employee's first name, used for greetings.
func (e Employee) FirstName() string {
	for i := 0; i < len(e.Name); i++ {
		if e.Name[i] == ' ' {
			return e.Name[:i]
		}
	}
	return e.Name
}
