package console

import "fmt"

type menuItem struct {
	key    int
	label  string
	action func() error // nil exits the session
}

type menu []menuItem

func (m menu) find(key int) (menuItem, bool) {
	for _, item := range m {
		if item.key == key {
			return item, true
		}
	}
	return menuItem{}, false
}

func (s *Session) menu() menu {
	show := func(f func()) func() error { return func() error { f(); return nil } }
	if s.layout == LayoutTable {
		return menu{
			{1, "Market", show(s.showMarket)},
			{2, "Buy", s.buy},
			{3, "Sell", s.sell},
			{4, "Save and exit", nil},
			{5, "Portfolio", show(s.showPlayer)},
		}
	}
	return menu{
		{1, "My assets", show(s.showPlayer)},
		{2, "Buy", s.buy},
		{3, "Sell", s.sell},
		{0, "Exit", nil},
	}
}

func (s *Session) printMenu(m menu) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "======= Stock Market =======")
	for _, item := range m {
		fmt.Fprintf(s.out, "  %d. %s\n", item.key, item.label)
	}
	fmt.Fprintln(s.out, "============================")
}
