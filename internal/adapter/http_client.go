package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/alternajob/user-service/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpUserDirectory struct {
	client *resty.Client
}

func NewHTTPUserDirectory(cfg HTTPClientConfig) UserDirectory {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpUserDirectory{client: cli}
}

func (h *httpUserDirectory) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.UserResponse
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("list users decode response: %w", err)
	}

	return users, nil
}

func (h *httpUserDirectory) GetUser(ctx context.Context, id int64) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("get user decode response: %w", err)
	}

	return user, nil
}

func (h *httpUserDirectory) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("create user decode response: %w", err)
	}

	return user, nil
}

func (h *httpUserDirectory) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("update user decode response: %w", err)
	}

	return user, nil
}

func (h *httpUserDirectory) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
