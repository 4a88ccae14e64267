package validation

import (
	"encoding/json"
	"testing"

	"client-hub/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Jo",
		"email":       "jo@x.com",
		"phone":       "5551234567",
		"projectType": "SEO",
		"budget":      "1000",
	}
}

func dashboardPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Innovate Corp",
		"email":       "contact@innovatecorp.com",
		"phone":       "555-0101",
		"projectType": "Web Design",
		"budget":      float64(15000),
		"status":      "In Progress",
	}
}

func TestParseClient_ContactValid(t *testing.T) {
	in, errs := ParseClient(contactPayload(), ProfileContact)

	require.Empty(t, errs)
	assert.Equal(t, "Jo", in.Name)
	assert.Equal(t, "jo@x.com", in.Email)
	assert.Equal(t, client.ProjectTypeSEO, in.ProjectType)
	assert.Equal(t, float64(1000), in.Budget)
	// Status stays empty on the contact profile, the caller forces it
	assert.Empty(t, in.Status)
}

func TestParseClient_DashboardValid(t *testing.T) {
	in, errs := ParseClient(dashboardPayload(), ProfileDashboard)

	require.Empty(t, errs)
	assert.Equal(t, client.StatusInProgress, in.Status)
	assert.Equal(t, float64(15000), in.Budget)
}

func TestParseClient_NameTooShort(t *testing.T) {
	payload := contactPayload()
	payload["name"] = "A"

	_, errs := ParseClient(payload, ProfileContact)

	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Name must be at least 2 characters."}, errs["name"])
}

func TestParseClient_InvalidEmail(t *testing.T) {
	payload := dashboardPayload()
	payload["email"] = "not-an-email"

	_, errs := ParseClient(payload, ProfileDashboard)

	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Please enter a valid email."}, errs["email"])
}

func TestParseClient_PhoneRules(t *testing.T) {
	// Nine digits fail the contact profile but pass the dashboard one
	payload := contactPayload()
	payload["phone"] = "555123456"

	_, errs := ParseClient(payload, ProfileContact)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Please enter a valid phone number."}, errs["phone"])

	payload = dashboardPayload()
	payload["phone"] = "555123456"
	_, errs = ParseClient(payload, ProfileDashboard)
	assert.Empty(t, errs)

	payload["phone"] = ""
	_, errs = ParseClient(payload, ProfileDashboard)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Please enter a phone number."}, errs["phone"])
}

func TestParseClient_ProjectTypeEnum(t *testing.T) {
	payload := contactPayload()
	payload["projectType"] = "Consulting"

	_, errs := ParseClient(payload, ProfileContact)

	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Please select a valid project type."}, errs["projectType"])
}

func TestParseClient_StatusEnum(t *testing.T) {
	payload := dashboardPayload()
	payload["status"] = "Archived"

	_, errs := ParseClient(payload, ProfileDashboard)

	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Please select a valid status."}, errs["status"])

	// The contact profile never looks at status
	payload = contactPayload()
	payload["status"] = "Archived"
	_, errs = ParseClient(payload, ProfileContact)
	assert.Empty(t, errs)
}

func TestParseClient_BudgetCoercion(t *testing.T) {
	payload := contactPayload()
	payload["budget"] = json.Number("2500.50")

	in, errs := ParseClient(payload, ProfileContact)
	require.Empty(t, errs)
	assert.Equal(t, 2500.50, in.Budget)

	payload["budget"] = "abc"
	_, errs = ParseClient(payload, ProfileContact)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Budget must be a number."}, errs["budget"])

	payload["budget"] = true
	_, errs = ParseClient(payload, ProfileContact)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Budget must be a number."}, errs["budget"])
}

func TestParseClient_BudgetBounds(t *testing.T) {
	// Zero passes the contact profile but not the dashboard one
	payload := contactPayload()
	payload["budget"] = float64(0)

	_, errs := ParseClient(payload, ProfileContact)
	assert.Empty(t, errs)

	payload = dashboardPayload()
	payload["budget"] = float64(0)
	_, errs = ParseClient(payload, ProfileDashboard)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Budget must be greater than zero."}, errs["budget"])

	payload = contactPayload()
	payload["budget"] = float64(-1)
	_, errs = ParseClient(payload, ProfileContact)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Budget must be a positive number."}, errs["budget"])
}

func TestParseClient_NilPayload(t *testing.T) {
	_, errs := ParseClient(nil, ProfileDashboard)

	// Every required field should report, nothing more
	require.Len(t, errs, 6)
	for _, field := range []string{"name", "email", "phone", "projectType", "budget", "status"} {
		assert.Equal(t, []string{"Required"}, errs[field], field)
	}

	_, errs = ParseClient(nil, ProfileContact)
	require.Len(t, errs, 5)
	assert.NotContains(t, errs, "status")
}

func TestParseClient_NonStringFieldIsRequired(t *testing.T) {
	payload := contactPayload()
	payload["name"] = float64(42)
	payload["email"] = nil

	_, errs := ParseClient(payload, ProfileContact)

	require.Len(t, errs, 2)
	assert.Equal(t, []string{"Required"}, errs["name"])
	assert.Equal(t, []string{"Required"}, errs["email"])
}

func TestParseClient_ErrorsOnlyForOffendingFields(t *testing.T) {
	payload := dashboardPayload()
	payload["name"] = "A"
	payload["budget"] = "free"

	_, errs := ParseClient(payload, ProfileDashboard)

	require.Len(t, errs, 2)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "budget")
}
