// oauth - пакет с внешними провайдерами аутентификации.
// Провайдер выполняет обмен кода подтверждения на идентификатор пользователя у провайдера,
// само согласие пользователь дает на странице провайдера. Никакие данные профиля,
// кроме идентификатора, сервером не запрашиваются и не сохраняются.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"secretkeeper/internal/common/identity/tools/id"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

// Имена поддерживаемых провайдеров.
const (
	Google   = "google"
	Facebook = "facebook"
)

// StateCookie - имя cookie со значением state для защиты от подмены ответа провайдера.
const StateCookie = "secretkeeper_oauth_state"

// Provider - внешний провайдер аутентификации. Реализует стратегию strategy.Federated.
type Provider struct {
	name        string
	config      *oauth2.Config
	userInfoURL string // адрес, по которому у провайдера запрашивается идентификатор пользователя
	client      *resty.Client
}

// NewGoogle - фабричная функция провайдера Google.
// redirectURL должен совпадать с адресом, зарегистрированным в консоли провайдера.
func NewGoogle(clientID, clientSecret, redirectURL string, client *resty.Client) *Provider {
	return &Provider{
		name: Google,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: "https://www.googleapis.com/oauth2/v3/userinfo",
		client:      client,
	}
}

// NewFacebook - фабричная функция провайдера Facebook.
func NewFacebook(clientID, clientSecret, redirectURL string, client *resty.Client) *Provider {
	return &Provider{
		name: Facebook,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		userInfoURL: "https://graph.facebook.com/me?fields=id",
		client:      client,
	}
}

// Name - имя провайдера. Используется как имя провайдера внешней идентификации в хранилище.
func (p *Provider) Name() string {
	return p.name
}

// AuthCodeURL - адрес страницы согласия провайдера с установленным значением state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// profile - структура ответа провайдера на запрос идентификатора пользователя.
// Google возвращает идентификатор в поле sub, Facebook - в поле id.
type profile struct {
	Sub string `json:"sub"`
	ID  string `json:"id"`
}

// Identity - обменивает код подтверждения на идентификатор пользователя у провайдера.
func (p *Provider) Identity(ctx context.Context, code string) (string, error) {
	// обмениваю код подтверждения на токен доступа провайдера
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code, %w", err)
	}

	// запрашиваю у провайдера идентификатор пользователя
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken).
		Get(p.userInfoURL)
	if err != nil {
		return "", fmt.Errorf("failed to request user info from provider %s, %w", p.name, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("provider %s returned status %d on user info request", p.name, resp.StatusCode())
	}

	var prof profile
	if err := json.Unmarshal(resp.Body(), &prof); err != nil {
		return "", fmt.Errorf("failed to parse user info from provider %s, %w", p.name, err)
	}

	providerID := prof.Sub
	if providerID == "" {
		providerID = prof.ID
	}
	if providerID == "" {
		return "", fmt.Errorf("provider %s returned empty user id", p.name)
	}
	return providerID, nil
}

// SetState - генерирует случайное значение state, устанавливает его в cookie ответа
// и возвращает для передачи провайдеру.
func SetState(res http.ResponseWriter) (string, error) {
	state, err := id.GenerateId()
	if err != nil {
		return "", fmt.Errorf("failed to generate state, %w", err)
	}
	http.SetCookie(res, &http.Cookie{
		Name:     StateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state, nil
}

// CheckState - сверяет значение state из запроса провайдера со значением из cookie.
func CheckState(req *http.Request, state string) bool {
	if state == "" {
		return false
	}
	c, err := req.Cookie(StateCookie)
	if err != nil {
		return false
	}
	return c.Value == state
}

// ClearState - удаляет cookie со значением state после завершения обмена с провайдером.
func ClearState(res http.ResponseWriter) {
	http.SetCookie(res, &http.Cookie{
		Name:     StateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
