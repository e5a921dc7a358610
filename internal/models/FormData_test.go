package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeForm_KnownShapes(t *testing.T) {
	cases := []struct {
		name     string
		category ServiceCategory
		appType  string
		payload  string
		want     Form
	}{
		{
			name:     "home loan",
			category: CategoryLoan,
			appType:  TypeHomeLoan,
			payload:  `{"fullName":"Asha Rao","mobileNumber":"9876543210","loanAmount":2500000,"propertyValue":4000000}`,
			want:     &HomeLoanForm{FullName: "Asha Rao", MobileNumber: "9876543210", LoanAmount: 2500000, PropertyValue: 4000000},
		},
		{
			name:     "gst service",
			category: CategoryCAService,
			appType:  TypeGSTService,
			payload:  `{"businessName":"Rao Traders","serviceNeeded":"registration","mobileNumber":"9876543210"}`,
			want:     &GSTServiceForm{BusinessName: "Rao Traders", ServiceNeeded: "registration", MobileNumber: "9876543210"},
		},
		{
			name:     "scheme enrollment",
			category: CategoryGovernmentScheme,
			appType:  TypeSchemeEnrollment,
			payload:  `{"schemeName":"PMEGP","fullName":"Asha Rao","mobileNumber":"9876543210","state":"Karnataka"}`,
			want:     &SchemeEnrollmentForm{SchemeName: "PMEGP", FullName: "Asha Rao", MobileNumber: "9876543210", State: "Karnataka"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form, err := DecodeForm(tc.category, tc.appType, json.RawMessage(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.want, form)
			assert.NoError(t, form.Validate())
		})
	}
}

func TestDecodeForm_UnknownTypeFallsBack(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes","nested":{"deep":true}}`)
	form, err := DecodeForm(CategoryLoan, "goldLoan", raw)
	require.NoError(t, err)

	unknown, ok := form.(*UnknownForm)
	require.True(t, ok, "expected the unknown fallback, got %T", form)
	assert.JSONEq(t, string(raw), string(unknown.Raw))
	assert.NoError(t, unknown.Validate())
}

func TestDecodeForm_RejectsInvalidJSON(t *testing.T) {
	_, err := DecodeForm(CategoryLoan, TypeHomeLoan, json.RawMessage(`{"loanAmount":`))
	assert.Error(t, err)
}

func TestFormValidation(t *testing.T) {
	cases := []struct {
		name string
		form Form
	}{
		{"home loan without amount", &HomeLoanForm{FullName: "A", MobileNumber: "1"}},
		{"home loan over property value", &HomeLoanForm{FullName: "A", MobileNumber: "1", LoanAmount: 100, PropertyValue: 50}},
		{"personal loan without contact", &PersonalLoanForm{LoanAmount: 100}},
		{"gst returns without gstin", &GSTServiceForm{BusinessName: "B", MobileNumber: "1", ServiceNeeded: "returns"}},
		{"itr without pan", &ITRFilingForm{FullName: "A", MobileNumber: "1"}},
		{"incorporation without directors", &CompanyIncorporationForm{ProposedName: "X", MobileNumber: "1"}},
		{"scheme without name", &SchemeEnrollmentForm{FullName: "A", MobileNumber: "1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.form.Validate())
		})
	}
}

func TestFormDataScanValue(t *testing.T) {
	raw := FormData(`{"loanAmount":100}`)

	v, err := raw.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"loanAmount":100}`), v)

	var scanned FormData
	require.NoError(t, scanned.Scan([]byte(`{"a":1}`)))
	assert.Equal(t, FormData(`{"a":1}`), scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))

	var empty FormData
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)
}
