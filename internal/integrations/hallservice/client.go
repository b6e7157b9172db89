package hallservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/ingest"
)

// Client клиент для работы с сервисом заявок на площадки
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента. Пустой token означает запросы без авторизации.
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListVenues получает список площадок (GET /halls)
func (c *Client) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	body, err := c.get(ctx, "/halls", nil)
	if err != nil {
		return nil, err
	}

	halls, err := decodeHalls(body)
	if err != nil {
		return nil, err
	}

	venues := make([]domain.Venue, 0, len(halls))
	for i := range halls {
		venue := halls[i].ToDomain()
		if venue.Name == "" {
			c.log.Warn("HallService: skipping hall without name or id at index=%d", i)
			continue
		}
		venues = append(venues, venue)
	}

	c.log.Info("HallService: fetched %d venues", len(venues))
	return venues, nil
}

// ListRaw получает заявки на бронирование (GET /seminars) в исходном виде.
// Фильтры date и hallName передаются сервису; нормализация выполняется адаптером ingest.
func (c *Client) ListRaw(ctx context.Context, query domain.BookingsQuery) ([]ingest.RawRecord, error) {
	params := url.Values{}
	if query.Date != nil {
		params.Set("date", query.Date.Format(domain.DateFormat))
	}
	if query.Venue != "" {
		params.Set("hallName", query.Venue)
	}

	body, err := c.get(ctx, "/seminars", params)
	if err != nil {
		return nil, err
	}

	records, err := ingest.DecodeRecords(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode seminars: %v", ErrInvalidResponse, err)
	}

	c.log.Info("HallService: fetched %d raw bookings (date=%v, hall=%q)", len(records), params.Get("date"), query.Venue)
	return records, nil
}

// get выполняет GET запрос и возвращает тело ответа при статусе 200
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnauthorized, path, resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, path, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: GET %s: unexpected status code %d: %s",
			ErrInvalidResponse, path, resp.StatusCode, truncate(body, 200))
	}
}

// decodeHalls принимает и голый массив, и объект {"halls": [...]} / {"data": [...]}
func decodeHalls(body []byte) ([]Hall, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []Hall{}, nil
	}

	if body[0] == '{' {
		var envelope hallsEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("%w: failed to decode halls: %v", ErrInvalidResponse, err)
		}
		if envelope.Halls != nil {
			return envelope.Halls, nil
		}
		if envelope.Data != nil {
			return envelope.Data, nil
		}
		return []Hall{}, nil
	}

	var halls []Hall
	if err := json.Unmarshal(body, &halls); err != nil {
		return nil, fmt.Errorf("%w: failed to decode halls: %v", ErrInvalidResponse, err)
	}
	return halls, nil
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
