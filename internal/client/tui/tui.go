// tui - пакет с константами имен страниц TUI интерфейса.
package tui

const (
	Home     = "home"     // приветственная страница
	Register = "register" // страница регистрации
	Login    = "login"    // страница входа
	Secrets  = "secrets"  // страница просмотра секретов
	Submit   = "submit"   // страница добавления нового секрета
)
