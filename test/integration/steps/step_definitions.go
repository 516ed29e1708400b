//go:build integration

package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/daily-budget/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

// theCurrentTimeIs pins the server clock to an RFC 3339 instant.
func (t *testContext) theCurrentTimeIs(instant string) error {
	now, err := time.Parse(time.RFC3339, instant)
	if err != nil {
		return fmt.Errorf("invalid instant '%s': %w", instant, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

// todayIs pins the server clock to noon UTC of the given date.
func (t *testContext) todayIs(date string) error {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, nil)
}

func (t *testContext) aUserExistsWithEmailAndMonthStartDay(email string, startDay int) error {
	return t.createUser(email, "DefaultPass123!", &startDay)
}

func (t *testContext) createUser(email, password string, startDay *int) error {
	userID := uuid.New()
	t.userID = userID

	user := &model.UserModel{
		ID:            userID,
		Email:         email,
		Name:          "Test User",
		PasswordHash:  hashPassword(password),
		MonthStartDay: startDay,
		Locale:        "en",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	return t.db.Conn().Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs registers the user through the API unless it already exists,
// then logs in and keeps the issued tokens.
func (t *testContext) iAmLoggedInAs(email string) error {
	var existing model.UserModel
	if err := t.db.Conn().Where("email = ?", email).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		if err := t.createUser(email, "DefaultPass123!", nil); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		t.userID = existing.ID
	}

	body := fmt.Sprintf(`{"email": %q, "password": "DefaultPass123!"}`, email)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	payload, _ := t.response.body.(map[string]any)
	t.accessToken, _ = payload["access_token"].(string)
	t.refreshToken, _ = payload["refresh_token"].(string)
	t.response = nil
	return nil
}

func (t *testContext) iHaveABudgetOf(amount string, month, year int) error {
	body := fmt.Sprintf(`{"monthly_amount": %q, "month": %d, "year": %d}`, amount, month, year)
	if err := t.executeRequest(http.MethodPut, "/api/v1/budgets", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated && t.response.status != http.StatusOK {
		return fmt.Errorf("set budget failed with status %d: %v", t.response.status, t.response.body)
	}
	t.response = nil
	return nil
}

func (t *testContext) iSpentOn(amount, category string) error {
	body := fmt.Sprintf(`{"amount": %q, "category": %q}`, amount, category)
	if err := t.executeRequest(http.MethodPost, "/api/v1/expenses", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("add expense failed with status %d: %v", t.response.status, t.response.body)
	}
	t.response = nil
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // unauthenticated from here on
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Created resources come back either bare or wrapped next to the daily log.
	for _, key := range []string{"expense", "fixed_expense", "income", "budget"} {
		if nested, ok := responseBody[key].(map[string]any); ok {
			t.captureID(nested)
			return nil
		}
	}
	t.captureID(responseBody)
	return nil
}

func (t *testContext) captureID(object map[string]any) {
	if idStr, ok := object["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	query := t.db.Conn().Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
