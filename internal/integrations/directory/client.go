package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент справочного сервиса агентства: клиенты, пул сиделок,
// каталог услуг. Ошибки транспорта пробрасываются без переинтерпретации.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClient получает профиль клиента агентства по ID
func (c *Client) GetClient(ctx context.Context, clientID int64) (*ClientProfile, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	var profile ClientProfile
	if err := c.getJSON(ctx, url, &profile, ErrClientNotFound); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetCaregiver получает сиделку по ID
func (c *Client) GetCaregiver(ctx context.Context, caregiverID int64) (*Caregiver, error) {
	url := fmt.Sprintf("%s/internal/caregivers/%d", c.baseURL, caregiverID)

	var caregiver Caregiver
	if err := c.getJSON(ctx, url, &caregiver, ErrCaregiverNotFound); err != nil {
		return nil, err
	}

	return &caregiver, nil
}

// GetActiveCaregivers получает активный пул сиделок агентства
func (c *Client) GetActiveCaregivers(ctx context.Context, agencyID int64) ([]Caregiver, error) {
	url := fmt.Sprintf("%s/internal/agencies/%d/caregivers?active=true", c.baseURL, agencyID)

	var caregivers []Caregiver
	if err := c.getJSON(ctx, url, &caregivers, ErrAgencyNotFound); err != nil {
		return nil, err
	}

	return caregivers, nil
}

// GetActiveCareServices получает активный каталог услуг агентства
func (c *Client) GetActiveCareServices(ctx context.Context, agencyID int64) ([]CareService, error) {
	url := fmt.Sprintf("%s/internal/agencies/%d/services?active=true", c.baseURL, agencyID)

	var services []CareService
	if err := c.getJSON(ctx, url, &services, ErrAgencyNotFound); err != nil {
		return nil, err
	}

	return services, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ.
// 404 транслируется в notFoundErr, остальные не-200 статусы - в ErrInvalidResponse.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
