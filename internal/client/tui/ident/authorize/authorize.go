package authorize

import (
	"context"
	"fmt"

	"secretkeeper/internal/client/handlers"
	"secretkeeper/internal/client/identity"
	"secretkeeper/internal/client/logger"
	"secretkeeper/internal/client/tui"
	"secretkeeper/internal/client/tui/app"
	"secretkeeper/internal/client/tui/tools/printer"

	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// LoginPage - страница входа по логину и паролю.
func LoginPage(ctx context.Context, info identity.IUserInfoStorage,
	url string, client *resty.Client) func(app *app.App) tview.Primitive {

	return func(app *app.App) tview.Primitive {
		form := tview.NewForm()
		authData := &identity.AuthData{}

		form.AddInputField("Логин", "", 20, nil, func(text string) { authData.Login = text })
		form.AddPasswordField("Пароль", "", 20, '*', func(text string) { authData.Password = text })

		form.AddButton("Войти", func() {
			// authData содержит введенные логин и пароль
			if authData.Login == "" || authData.Password == "" {
				logger.ClientLog.Error("login or password can't be empty", zap.String("login", authData.Login))
				printer.Error(app, "login or password can't be empty")

				// Переключаю пользователя обратно на страницу входа
				app.SwitchTo(tui.Login)
				return
			}
			// Выполняю вход на сервере
			ok, err := handlers.Login(ctx, url, authData, client, info)
			if err != nil {
				logger.ClientLog.Error("login error", zap.String("error", error.Error(err)))
				printer.Error(app, fmt.Sprintf("login error, %v", err))

				// Переключаю пользователя обратно на страницу входа
				app.SwitchTo(tui.Login)
				return
			}
			// Сервер отклонил пару логин-пароль. Причина не уточняется
			if !ok {
				logger.ClientLog.Error("invalid login or password", zap.String("login", authData.Login))
				printer.Error(app, "invalid login or password")

				// Очистка поля пароля для повторной попытки входа
				form.GetFormItemByLabel("Пароль").(*tview.InputField).SetText("")

				// Переключаю пользователя обратно на страницу входа
				app.SwitchTo(tui.Login)
				return
			}
			// Вход прошел успешно, переключаю пользователя на страницу секретов
			app.SwitchTo(tui.Secrets)
		})

		form.AddButton("Назад", func() { app.SwitchTo(tui.Home) })
		form.AddButton("Выход", func() { app.App.Stop() })

		form.SetBorder(true).SetTitle("Вход").SetTitleAlign(tview.AlignCenter)

		return tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(form, 10, 1, true)
	}
}
