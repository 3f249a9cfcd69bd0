package desk

const helpText = `
help()
     Repeat this list of commands.
open()
     Opens the library for business; do this once each morning.

list_overdue_books()
     Prints out information about books due yesterday.

issue_card("name_of_patron")
     Allows the named person the use of the library.

serve("name_of_patron")
     Sets this patron to be the current patron being served.

search("string")
     Searches for any book or author containing this string
     and displays a numbered list of results.

check_out(books...)
     Checks out books (by number) to the current patron.

check_in(books...)
     Accepts returned books (by number) from the current patron.

close()
     Closes the library at the end of the day.

quit()
     Closes the library for good. Hope you never have to use this!`

// Help lists the commands the desk understands.
func (l *Library) Help() Response {
	var r Response
	r.talk(helpText)

	return r
}
