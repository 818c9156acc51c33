// Command console runs the library inventory as an interactive menu on
// stdin/stdout. It drives the same storage engine as the HTTP server,
// entirely in process: items are added to shelf compartments, checked
// out, checked in and swapped, and the two reports print in the same
// layout the report endpoints serve. Errors from the engine are printed
// and the menu continues.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iliyamo/library-inventory/internal/handler"
	"github.com/iliyamo/library-inventory/internal/inventory"
	"github.com/iliyamo/library-inventory/internal/model"
)

const menuText = "\n=== Library Inventory System Menu ===\n" +
	"1. Add a Book\n" +
	"2. Add a Magazine\n" +
	"3. Add a Movie\n" +
	"4. Check Out Item\n" +
	"5. Check In Item\n" +
	"6. Swap Items\n" +
	"7. Print All Items\n" +
	"8. Print Checked Out Items\n" +
	"0. Exit\n" +
	"=======================================\n" +
	"Enter your choice: "

// console bundles the input scanner with the engine and the identity
// allocator for the duration of a session.
type console struct {
	in  *bufio.Scanner
	inv *inventory.Inventory
	ids *handler.IDAllocator
	eof bool
}

func main() {
	cl := &console{
		in:  bufio.NewScanner(os.Stdin),
		inv: inventory.New(),
		ids: handler.NewIDAllocator(),
	}

	for {
		choice := cl.readInt(menuText)
		if cl.eof {
			fmt.Println("Exiting program...")
			return
		}
		fmt.Println()

		switch choice {
		case 0:
			fmt.Println("Exiting program...")
			return
		case 1:
			cl.addBook()
		case 2:
			cl.addMagazine()
		case 3:
			cl.addMovie()
		case 4:
			cl.checkoutItem()
		case 5:
			cl.checkinItem()
		case 6:
			cl.swapItems()
		case 7:
			fmt.Print(cl.inv.RenderStorage())
		case 8:
			fmt.Print(cl.inv.RenderCheckedOut())
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

// readLine prints the prompt and returns the next input line verbatim.
// On end of input it sets the eof flag and returns an empty string.
func (cl *console) readLine(prompt string) string {
	fmt.Print(prompt)
	if !cl.in.Scan() {
		cl.eof = true
		return ""
	}
	return cl.in.Text()
}

// readInt prompts until the user enters a number. After the first
// failure the prompt switches to a correction message, mirroring the
// menu's original feel.
func (cl *console) readInt(prompt string) int {
	for {
		raw := cl.readLine(prompt)
		if cl.eof {
			return 0
		}
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return n
		}
		prompt = "Invalid input. Please enter a number: "
	}
}

// readPosition collects a shelf and compartment pair, re-prompting
// while either index is outside the grid.
func (cl *console) readPosition() model.Position {
	shelf := cl.readInt("Enter shelf number (0-2): ")
	for !cl.eof && (shelf < 0 || shelf >= model.ShelfCount) {
		shelf = cl.readInt("Invalid shelf. Please enter a number between 0-2: ")
	}

	compartment := cl.readInt("Enter compartment number (0-14): ")
	for !cl.eof && (compartment < 0 || compartment >= model.CompartmentCount) {
		compartment = cl.readInt("Invalid compartment. Please enter a number between 0-14: ")
	}

	return model.NewPosition(shelf, compartment)
}

func (cl *console) addBook() {
	name := cl.readLine("Enter name: ")
	description := cl.readLine("Enter description: ")
	title := cl.readLine("Enter title: ")
	author := cl.readLine("Enter author: ")
	copyright := cl.readLine("Enter copyright date: ")

	// The identity is consumed before the position is asked for, so a
	// failed add burns it; numbering never rewinds.
	book := &model.Book{
		ID:            cl.ids.Next(),
		Name:          name,
		Description:   description,
		Title:         title,
		Author:        author,
		CopyrightDate: copyright,
	}
	pos := cl.readPosition()

	if err := cl.inv.AddItem(pos, book); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Book added successfully!")
}

func (cl *console) addMagazine() {
	name := cl.readLine("Enter name: ")
	description := cl.readLine("Enter description: ")
	edition := cl.readLine("Enter edition: ")
	title := cl.readLine("Enter title of main article: ")

	magazine := &model.Magazine{
		ID:          cl.ids.Next(),
		Name:        name,
		Description: description,
		Edition:     edition,
		Title:       title,
	}
	pos := cl.readPosition()

	if err := cl.inv.AddItem(pos, magazine); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Magazine added successfully!")
}

func (cl *console) addMovie() {
	name := cl.readLine("Enter name: ")
	description := cl.readLine("Enter description: ")
	title := cl.readLine("Enter title: ")
	director := cl.readLine("Enter director: ")

	numActors := cl.readInt("Enter number of main actors: ")
	var actors []string
	for i := 0; i < numActors; i++ {
		actors = append(actors, cl.readLine(fmt.Sprintf("Enter actor %d: ", i+1)))
	}

	movie := &model.Movie{
		ID:          cl.ids.Next(),
		Name:        name,
		Description: description,
		Title:       title,
		Director:    director,
		MainActors:  actors,
	}
	pos := cl.readPosition()

	if err := cl.inv.AddItem(pos, movie); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Movie added successfully!")
}

func (cl *console) checkoutItem() {
	itemID := strings.TrimSpace(cl.readLine("Enter item ID to check out: "))
	by := cl.readLine("Enter name of person checking out: ")

	item, err := cl.inv.CheckoutItem(itemID, by)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Item checked out successfully:")
	fmt.Println(item.Render())
}

func (cl *console) checkinItem() {
	raw := cl.readLine("Enter item ID to check in: ")
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Println("Error: invalid item id")
		return
	}

	if err := cl.inv.CheckinItem(strconv.Itoa(id)); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Item checked in successfully!")
}

func (cl *console) swapItems() {
	fmt.Println("First position:")
	first := cl.readPosition()

	fmt.Println("Second position:")
	second := cl.readPosition()

	if err := cl.inv.SwapItems(first, second); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Items swapped successfully!")
}
