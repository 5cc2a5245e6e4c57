package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List packs in the level library",
	Long: `Show the level packs stored with 'sokoban import'.

Examples:
  sokoban packs
  sokoban packs show classic
  sokoban packs delete classic`,
	Args: cobra.NoArgs,
	Run:  runPacks,
}

var packsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "List the level names of a pack",
	Args:  cobra.ExactArgs(1),
	Run:   runPacksShow,
}

var packsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a pack from the level library",
	Args:  cobra.ExactArgs(1),
	Run:   runPacksDelete,
}

func init() {
	packsCmd.AddCommand(packsShowCmd)
	packsCmd.AddCommand(packsDeleteCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening level library: %v", err)
	}
	return store
}

func runPacks(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	packs, err := store.ListPacks()
	if err != nil {
		store.Close()
		fatal("listing packs: %v", err)
	}

	if len(packs) == 0 {
		fmt.Println("No packs in the level library.")
		fmt.Println()
		fmt.Println("Run 'sokoban import <file>' to add one.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range packs {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxNameLen, "Name", "Levels", "Imported", "Source")
	fmt.Printf("  %-*s  %-6s  %-16s  %s\n", maxNameLen, "----", "------", "--------", "------")

	for _, p := range packs {
		dateStr := p.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-*s  %-6d  %-16s  %s\n", maxNameLen, p.Name, p.LevelCount, dateStr, p.SourceName)
	}
}

func runPacksShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	names, err := store.PackLevelNames(args[0])
	if err != nil {
		store.Close()
		fatal("%v", err)
	}

	fmt.Printf("Pack %q - %d levels\n\n", args[0], len(names))
	for i, n := range names {
		if n == "" {
			n = fmt.Sprintf("Level %d", i+1)
		}
		fmt.Printf("  %3d  %s\n", i+1, n)
	}
}

func runPacksDelete(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeletePack(args[0]); err != nil {
		store.Close()
		if errors.Is(err, storage.ErrPackNotFound) {
			fatal("no pack named %q", args[0])
		}
		fatal("deleting pack: %v", err)
	}
	fmt.Printf("Deleted pack %q\n", args[0])
}
