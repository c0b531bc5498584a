package main

import (
	"strings"

	"github.com/npillmayer/ffgram/ll"
	"github.com/pterm/pterm"
)

func setString(set []*ll.Symbol) string {
	names := make([]string, len(set))
	for i, a := range set {
		names[i] = a.Name
	}
	return "{" + strings.Join(names, ",") + "}"
}

func printSetTable(label string, t *ll.SetTable) {
	data := pterm.TableData{{"", label}}
	t.Each(func(A *ll.Symbol, set []*ll.Symbol) {
		data = append(data, []string{A.Name, setString(set)})
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printAnalysis(ga *ll.LLAnalysis) {
	data := pterm.TableData{{"", "FIRST", "FOLLOW", "nullable"}}
	ga.Grammar().EachNonTerminal(func(N *ll.Symbol) interface{} {
		nullable := ""
		if ga.Nullable(N) {
			nullable = "yes"
		}
		data = append(data, []string{N.Name, setString(ga.First(N)), setString(ga.Follow(N)), nullable})
		return nil
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printGrammar displays the rules of a grammar as a tree, grouped by
// left hand side.
func printGrammar(g *ll.Grammar) {
	pterm.Println(g.Name)
	list := pterm.LeveledList{}
	g.EachNonTerminal(func(N *ll.Symbol) interface{} {
		list = append(list, pterm.LeveledListItem{Level: 0, Text: N.Name})
		for _, r := range g.FindNonTermRules(N) {
			list = append(list, pterm.LeveledListItem{Level: 1, Text: rhsString(r)})
		}
		return nil
	})
	root := pterm.NewTreeFromLeveledList(list)
	pterm.DefaultTree.WithRoot(root).Render()
}

func rhsString(r *ll.Rule) string {
	if r.IsEps() {
		return ll.EpsilonName
	}
	names := make([]string, len(r.RHS()))
	for i, X := range r.RHS() {
		names[i] = X.Name
	}
	return strings.Join(names, " ")
}

func printHelp() {
	pterm.Println(`Productions are entered one per line. Commands are:
  :first [N]     print FIRST-sets, or FIRST(N)
  :follow [N]    print FOLLOW-sets, or FOLLOW(N)
  :show          print FIRST- and FOLLOW-sets
  :grammar       print the session grammar
  :format f      switch notation (compact|bnf)
  :load file     append productions from a file
  :html file     export tables as HTML
  :clear         start over
  :quit          leave`)
}
