package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/keytree-go/keytree"
	"github.com/spf13/cobra"
)

// REPL holds the state of an interactive session over a single
// dialogue tree with string keys and string payloads.
type REPL struct {
	tree   *keytree.Tree[string, string]
	reader *bufio.Reader
}

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive dialogue-tree session",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl := &REPL{
				tree:   keytree.New[string, string](),
				reader: bufio.NewReader(os.Stdin),
			}
			repl.run()
			return nil
		},
	}
}

func (r *REPL) run() {
	fmt.Println("keytree REPL - Interactive Dialogue Tree Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	for {
		fmt.Print("keytree> ")
		input, err := r.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.handleCommand(input) {
			return
		}
	}
}

// handleCommand executes one REPL command. Returns false to exit.
func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "help":
		r.printHelp()

	case "root":
		if len(args) < 2 {
			fmt.Println("Usage: root <key> <text...>")
			break
		}
		node := keytree.NewRoot(strings.Join(args[1:], " "), args[0])
		if err := r.tree.Append(node); err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
		fmt.Printf("Root %q added\n", args[0])

	case "add":
		if len(args) < 3 {
			fmt.Println("Usage: add <parent-key> <key> <text...>")
			break
		}
		node := keytree.NewNode(strings.Join(args[2:], " "), args[1], args[0])
		if err := r.tree.Append(node); err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
		fmt.Printf("Node %q added under %q\n", args[1], args[0])

	case "travel":
		node, ok := r.tree.TravelTo(args...)
		if !ok {
			fmt.Println("Route not found")
			break
		}
		fmt.Printf("[%s] %s\n", node.Key(), node.Data)

	case "path":
		if len(args) != 1 {
			fmt.Println("Usage: path <key>")
			break
		}
		route, ok := r.tree.PathTo(args[0])
		if !ok {
			fmt.Printf("No node %q\n", args[0])
			break
		}
		if len(route) == 0 {
			fmt.Println("(root)")
			break
		}
		fmt.Println(strings.Join(route, " -> "))

	case "remove":
		if len(args) != 1 {
			fmt.Println("Usage: remove <key>")
			break
		}
		removed := r.tree.RemoveSubtree(args[0])
		fmt.Printf("Removed %d node(s)\n", removed)

	case "show":
		if err := r.tree.Dump(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

	case "len":
		fmt.Printf("%d node(s)\n", r.tree.Len())

	case "keys":
		fmt.Println(strings.Join(r.tree.Keys(), ", "))

	default:
		fmt.Printf("Unknown command %q, type 'help' for commands\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  root <key> <text...>          add the root node")
	fmt.Println("  add <parent> <key> <text...>  add a node under a parent")
	fmt.Println("  travel [key...]               walk a route from the root")
	fmt.Println("  path <key>                    show the route to a node")
	fmt.Println("  remove <key>                  remove a node and its subtree")
	fmt.Println("  show                          print the tree")
	fmt.Println("  len                           count nodes")
	fmt.Println("  keys                          list keys in insertion order")
	fmt.Println("  quit                          exit")
}
