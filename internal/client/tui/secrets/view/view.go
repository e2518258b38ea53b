package view

import (
	"context"
	"fmt"

	"secretkeeper/internal/client/handlers"
	"secretkeeper/internal/client/identity"
	"secretkeeper/internal/client/tui"
	"secretkeeper/internal/client/tui/app"
	"secretkeeper/internal/client/tui/tools/printer"

	"github.com/gdamore/tcell/v2"
	"github.com/go-resty/resty/v2"
	"github.com/rivo/tview"
)

// Page - страница просмотра секретов всех учетных записей.
// Секреты отображаются без указания авторства.
func Page(ctx context.Context, info identity.IUserInfoStorage, url string, client *resty.Client) func(app *app.App) tview.Primitive {
	return func(app *app.App) tview.Primitive {
		// Создаю элементы интерфейса
		table := tview.NewTable().SetBorders(true)

		// Кнопка "Обновить" для обновления секретов на странице
		updateFunc := func() {
			table.Clear()

			// Выгружаю секреты с сервера
			allSecrets, err := handlers.ListSecrets(ctx, url, client)
			if err != nil {
				printer.Error(app, fmt.Errorf("failed to get secrets, %w", err).Error())
				return
			}

			if len(allSecrets) == 0 {
				printer.Message(app, "secrets not added yet")
				return
			}

			// Заполнение таблицы секретами. Авторство секретов не отображается
			table.SetCell(0, 0, tview.NewTableCell("Секрет").SetSelectable(false).SetAlign(tview.AlignCenter).SetTextColor(tcell.ColorYellow))
			row := 1
			for _, accountSecrets := range allSecrets {
				for _, secret := range accountSecrets.Secrets {
					table.SetCell(row, 0, tview.NewTableCell(secret).SetSelectable(true))
					row++
				}
			}
		}

		// Кнопки
		updateButton := tview.NewButton("Обновить")
		submitButton := tview.NewButton("Добавить")
		logoutButton := tview.NewButton("Выйти")

		// Контейнер с таблицей секретов и кнопками
		flex := tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(table, 0, 1, false)

		buttons := tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(updateButton, 12, 1, true).
			AddItem(submitButton, 12, 1, false).
			AddItem(logoutButton, 12, 1, false)

		flex.AddItem(buttons, 3, 1, true)

		// фокус на кнопку "Обновить"
		app.App.SetFocus(updateButton)

		// Переключение фокуса с помощью Tab
		flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			switch event.Key() {
			case tcell.KeyTab: // Циклический переход фокуса между элементами
				switch app.App.GetFocus() {
				case updateButton:
					app.App.SetFocus(submitButton)
				case submitButton:
					app.App.SetFocus(logoutButton)
				case logoutButton:
					app.App.SetFocus(updateButton)
				}
			case tcell.KeyEnter: // Обработка нажатий кнопок
				if app.App.GetFocus() == updateButton {
					updateFunc()
				} else if app.App.GetFocus() == submitButton {
					app.SwitchTo(tui.Submit)
				} else if app.App.GetFocus() == logoutButton {
					// Сбрасываю данные сессии, чтобы клиент не входил повторно автоматически
					info.Set(identity.AuthData{}, "")
					app.SwitchTo(tui.Home)
				}
			case tcell.KeyEsc: // Выход на приветственную страницу
				app.SwitchTo(tui.Home)
			}
			return event
		})

		return flex
	}
}
