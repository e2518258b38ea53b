package submit

import (
	"context"
	"fmt"

	"secretkeeper/internal/client/handlers"
	"secretkeeper/internal/client/logger"
	"secretkeeper/internal/client/tui"
	"secretkeeper/internal/client/tui/app"
	"secretkeeper/internal/client/tui/tools/printer"

	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Page - страница добавления нового секрета текущей учетной записи.
func Page(ctx context.Context, url string, client *resty.Client) func(app *app.App) tview.Primitive {
	return func(app *app.App) tview.Primitive {
		form := tview.NewForm()
		var secret string

		form.AddInputField("Секрет", "", 40, nil, func(text string) { secret = text })

		form.AddButton("Сохранить", func() {
			if secret == "" {
				logger.ClientLog.Error("secret can't be empty")
				printer.Error(app, "secret can't be empty")

				// Переключаю пользователя обратно на страницу добавления секрета
				app.SwitchTo(tui.Submit)
				return
			}

			// отправляю новый секрет на сервер
			err := handlers.SubmitSecret(ctx, url, secret, client)
			if err != nil {
				logger.ClientLog.Error("failed to submit secret", zap.String("error", err.Error()))
				printer.Error(app, fmt.Sprintf("failed to submit secret, %v", err))

				// Переключаю пользователя обратно на страницу добавления секрета
				app.SwitchTo(tui.Submit)
				return
			}

			// Успешное добавление секрета
			logger.ClientLog.Info("new secret successfully submitted")
			printer.Message(app, "new secret successfully submitted")

			// Очистка поля формы для добавления следующего секрета
			form.GetFormItemByLabel("Секрет").(*tview.InputField).SetText("")

			// Переключаю пользователя на страницу секретов
			app.SwitchTo(tui.Secrets)
		})

		form.AddButton("Назад", func() { app.SwitchTo(tui.Secrets) })
		form.AddButton("Выход", func() { app.App.Stop() })

		form.SetBorder(true).SetTitle("Новый секрет").SetTitleAlign(tview.AlignCenter)

		return tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(form, 10, 1, true)
	}
}
