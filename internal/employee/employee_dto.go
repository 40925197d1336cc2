package employee

type EmployeeResponse struct {
	ID           string `json:"id"`
	StaffNumber  string `json:"staff_number"`
	FullName     string `json:"full_name"`
	Email        string `json:"email,omitempty"`
	BasicSalary  string `json:"basic_salary"`
	Department   string `json:"department,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Branch       string `json:"branch,omitempty"`
	Location     string `json:"location,omitempty"`
	ContractType string `json:"contract_type,omitempty"`
	JoinDate     string `json:"join_date,omitempty"`
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID.String(),
		StaffNumber:  e.StaffNumber,
		FullName:     e.FullName(),
		Email:        e.ContactEmail(),
		BasicSalary:  e.BasicSalary.StringFixed(2),
		Department:   e.Department,
		Designation:  e.Designation,
		Branch:       e.Branch,
		Location:     e.Location,
		ContractType: e.ContractType,
	}
	if !e.JoinDate.IsZero() {
		resp.JoinDate = e.JoinDate.Format("2006-01-02")
	}
	return resp
}
