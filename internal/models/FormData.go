package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// FormData is the raw form payload of an application, stored as jsonb.
// It stays opaque at the storage layer; DecodeForm turns it into a typed
// variant for validation.
type FormData json.RawMessage

func (f FormData) Value() (driver.Value, error) {
	if len(f) == 0 {
		return []byte("{}"), nil
	}
	return []byte(f), nil
}

func (f *FormData) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = nil
	case []byte:
		*f = append((*f)[:0], v...)
	case string:
		*f = FormData(v)
	default:
		return fmt.Errorf("cannot scan %T into FormData", value)
	}
	return nil
}

func (f FormData) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return []byte("null"), nil
	}
	return f, nil
}

func (f *FormData) UnmarshalJSON(data []byte) error {
	*f = append((*f)[:0], data...)
	return nil
}

// Form is a decoded form payload variant.
type Form interface {
	Validate() error
}

// Application types with a dedicated form shape, keyed per category.
const (
	TypeHomeLoan     = "homeLoan"
	TypePersonalLoan = "personalLoan"
	TypeBusinessLoan = "businessLoan"
	TypeCreditCard   = "creditCard"

	TypeGSTService           = "gstService"
	TypeITRFiling            = "itrFiling"
	TypeAccountingService    = "accountingService"
	TypeCompanyIncorporation = "companyIncorporation"

	TypeSchemeEnrollment = "schemeEnrollment"
)

// HomeLoanForm covers home purchase and loan-against-property requests.
type HomeLoanForm struct {
	FullName       string  `json:"fullName"`
	MobileNumber   string  `json:"mobileNumber"`
	LoanAmount     float64 `json:"loanAmount"`
	PropertyValue  float64 `json:"propertyValue"`
	PropertyCity   string  `json:"propertyCity"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	EmploymentType string  `json:"employmentType"`
}

func (f *HomeLoanForm) Validate() error {
	if f.FullName == "" || f.MobileNumber == "" {
		return errors.New("applicant name and mobile number are required")
	}
	if f.LoanAmount <= 0 {
		return errors.New("loan amount must be positive")
	}
	if f.PropertyValue > 0 && f.LoanAmount > f.PropertyValue {
		return errors.New("loan amount cannot exceed property value")
	}
	return nil
}

// PersonalLoanForm is the unsecured personal loan request.
type PersonalLoanForm struct {
	FullName       string  `json:"fullName"`
	MobileNumber   string  `json:"mobileNumber"`
	LoanAmount     float64 `json:"loanAmount"`
	Purpose        string  `json:"purpose"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	EmploymentType string  `json:"employmentType"`
}

func (f *PersonalLoanForm) Validate() error {
	if f.FullName == "" || f.MobileNumber == "" {
		return errors.New("applicant name and mobile number are required")
	}
	if f.LoanAmount <= 0 {
		return errors.New("loan amount must be positive")
	}
	return nil
}

// BusinessLoanForm is the working-capital / business expansion request.
type BusinessLoanForm struct {
	BusinessName    string  `json:"businessName"`
	ContactName     string  `json:"contactName"`
	MobileNumber    string  `json:"mobileNumber"`
	LoanAmount      float64 `json:"loanAmount"`
	AnnualTurnover  float64 `json:"annualTurnover"`
	YearsInBusiness int     `json:"yearsInBusiness"`
}

func (f *BusinessLoanForm) Validate() error {
	if f.BusinessName == "" || f.MobileNumber == "" {
		return errors.New("business name and mobile number are required")
	}
	if f.LoanAmount <= 0 {
		return errors.New("loan amount must be positive")
	}
	return nil
}

// CreditCardForm is the credit card lead.
type CreditCardForm struct {
	FullName      string  `json:"fullName"`
	MobileNumber  string  `json:"mobileNumber"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	Employer      string  `json:"employer"`
	ExistingCard  bool    `json:"existingCard"`
}

func (f *CreditCardForm) Validate() error {
	if f.FullName == "" || f.MobileNumber == "" {
		return errors.New("applicant name and mobile number are required")
	}
	if f.MonthlyIncome <= 0 {
		return errors.New("monthly income must be positive")
	}
	return nil
}

// GSTServiceForm covers GST registration and return filing.
type GSTServiceForm struct {
	BusinessName  string `json:"businessName"`
	GSTIN         string `json:"gstin"`
	ServiceNeeded string `json:"serviceNeeded"` // "registration" or "returns"
	ContactName   string `json:"contactName"`
	MobileNumber  string `json:"mobileNumber"`
}

func (f *GSTServiceForm) Validate() error {
	if f.BusinessName == "" || f.MobileNumber == "" {
		return errors.New("business name and mobile number are required")
	}
	if f.ServiceNeeded == "returns" && f.GSTIN == "" {
		return errors.New("GSTIN is required for return filing")
	}
	return nil
}

// ITRFilingForm is the income-tax return filing request.
type ITRFilingForm struct {
	FullName       string `json:"fullName"`
	PAN            string `json:"pan"`
	AssessmentYear string `json:"assessmentYear"`
	IncomeSources  string `json:"incomeSources"`
	MobileNumber   string `json:"mobileNumber"`
}

func (f *ITRFilingForm) Validate() error {
	if f.FullName == "" || f.MobileNumber == "" {
		return errors.New("applicant name and mobile number are required")
	}
	if f.PAN == "" {
		return errors.New("PAN is required")
	}
	return nil
}

// AccountingServiceForm is the bookkeeping/accounting retainer lead.
type AccountingServiceForm struct {
	BusinessName  string `json:"businessName"`
	ContactName   string `json:"contactName"`
	MobileNumber  string `json:"mobileNumber"`
	BusinessType  string `json:"businessType"`
	MonthlyVolume string `json:"monthlyVolume"`
}

func (f *AccountingServiceForm) Validate() error {
	if f.BusinessName == "" || f.MobileNumber == "" {
		return errors.New("business name and mobile number are required")
	}
	return nil
}

// CompanyIncorporationForm is the company registration request.
type CompanyIncorporationForm struct {
	ProposedName  string `json:"proposedName"`
	CompanyType   string `json:"companyType"` // pvt ltd, llp, opc
	DirectorCount int    `json:"directorCount"`
	ContactName   string `json:"contactName"`
	MobileNumber  string `json:"mobileNumber"`
}

func (f *CompanyIncorporationForm) Validate() error {
	if f.ProposedName == "" || f.MobileNumber == "" {
		return errors.New("proposed company name and mobile number are required")
	}
	if f.DirectorCount < 1 {
		return errors.New("at least one director is required")
	}
	return nil
}

// SchemeEnrollmentForm is the government-scheme enrollment request.
type SchemeEnrollmentForm struct {
	SchemeName   string `json:"schemeName"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	State        string `json:"state"`
	AadhaarLast4 string `json:"aadhaarLast4"`
}

func (f *SchemeEnrollmentForm) Validate() error {
	if f.SchemeName == "" {
		return errors.New("scheme name is required")
	}
	if f.FullName == "" || f.MobileNumber == "" {
		return errors.New("applicant name and mobile number are required")
	}
	return nil
}

// UnknownForm preserves payloads whose application type has no dedicated
// shape yet. Kept verbatim for forward compatibility, never rejected.
type UnknownForm struct {
	Raw json.RawMessage
}

func (f *UnknownForm) Validate() error { return nil }

var formShapes = map[ServiceCategory]map[string]func() Form{
	CategoryLoan: {
		TypeHomeLoan:     func() Form { return &HomeLoanForm{} },
		TypePersonalLoan: func() Form { return &PersonalLoanForm{} },
		TypeBusinessLoan: func() Form { return &BusinessLoanForm{} },
		TypeCreditCard:   func() Form { return &CreditCardForm{} },
	},
	CategoryCAService: {
		TypeGSTService:           func() Form { return &GSTServiceForm{} },
		TypeITRFiling:            func() Form { return &ITRFilingForm{} },
		TypeAccountingService:    func() Form { return &AccountingServiceForm{} },
		TypeCompanyIncorporation: func() Form { return &CompanyIncorporationForm{} },
	},
	CategoryGovernmentScheme: {
		TypeSchemeEnrollment: func() Form { return &SchemeEnrollmentForm{} },
	},
}

// DecodeForm decodes a raw payload into the variant registered for the
// category and application type. Unregistered types fall back to
// UnknownForm so older or newer clients keep working.
func DecodeForm(category ServiceCategory, applicationType string, raw json.RawMessage) (Form, error) {
	if !json.Valid(raw) {
		return nil, errors.New("form data is not valid JSON")
	}
	byType, ok := formShapes[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	newForm, ok := byType[applicationType]
	if !ok {
		return &UnknownForm{Raw: raw}, nil
	}
	form := newForm()
	if err := json.Unmarshal(raw, form); err != nil {
		return nil, fmt.Errorf("form data does not match the %s shape: %w", applicationType, err)
	}
	return form, nil
}
