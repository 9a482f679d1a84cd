package main

import (
	"fmt"
	"sort"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/ref"
)

var tablesCmd = app.Command("tables", "list built-in genetic codes and reference tables")

func listTables() {
	ids := make([]int, 0, len(bio.GeneticCodes))
	for id := range bio.GeneticCodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fmt.Println("Genetic codes (-gcode):")
	for _, id := range ids {
		fmt.Printf("%4d  %s\n", id, bio.GeneticCodes[id].Name)
	}

	fmt.Println("\nOptimal codon sets (-fop, -cbi):")
	for _, name := range ref.FopSetNames() {
		fmt.Printf("  %-14s %s\n", name, ref.FopSets[name].Ref)
	}

	fmt.Println("\nRelative adaptiveness sets (-cai):")
	for _, name := range ref.CAISetNames() {
		fmt.Printf("  %-14s %s\n", name, ref.CAISets[name].Ref)
	}
}
