package client

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

func printPokemon(w io.Writer, p map[string]any) {
	_, _ = fmt.Fprintf(w, "%s (#%v)\n", p["name"], p["id"])
	_, _ = fmt.Fprintf(w, "  Types: %s\n", strings.Join(stringsOf(p["types"]), ", "))

	if stats, ok := p["stats"].(map[string]any); ok {
		names := make([]string, 0, len(stats))
		for name := range stats {
			names = append(names, name)
		}
		sort.Strings(names)

		_, _ = fmt.Fprintln(w, "  Stats:")
		for _, name := range names {
			_, _ = fmt.Fprintf(w, "    %-16s %v\n", name, stats[name])
		}
	}

	if moves, ok := p["moves"].([]any); ok && len(moves) > 0 {
		_, _ = fmt.Fprintln(w, "  Moves:")
		for _, m := range moves {
			move, _ := m.(map[string]any)
			power := "-"
			if v, ok := move["power"].(float64); ok {
				power = fmt.Sprintf("%.0f", v)
			}
			_, _ = fmt.Fprintf(w, "    %-16v %-10v power %s\n", move["name"], move["type"], power)
		}
	}
}

func printBattleResult(w io.Writer, r map[string]any) {
	printLog(w, r["battle_log"])
	_, _ = fmt.Fprintf(w, "\nBattle ID: %v (stored: %v)\n", r["battle_id"], r["stored"])
}

func printBattleRecord(w io.Writer, r map[string]any) {
	_, _ = fmt.Fprintf(w, "%v: %v vs %v, %v turns\n", r["id"], r["pokemon1"], r["pokemon2"], r["turns"])
	printLog(w, r["battle_log"])
}

func printBattleList(w io.Writer, r map[string]any) {
	battles, _ := r["battles"].([]any)
	if len(battles) == 0 {
		_, _ = fmt.Fprintln(w, "No battles stored.")
		return
	}

	for _, b := range battles {
		record, _ := b.(map[string]any)
		winner := record["winner"]
		if winner == "" || winner == nil {
			winner = "Draw"
		}
		_, _ = fmt.Fprintf(w, "%-40v %v vs %v -> %v\n", record["id"], record["pokemon1"], record["pokemon2"], winner)
	}
}

func printLog(w io.Writer, raw any) {
	entries, _ := raw.([]any)
	for _, e := range entries {
		entry, _ := e.(map[string]any)
		_, _ = fmt.Fprintln(w, entry["text"])
	}
}

func stringsOf(raw any) []string {
	items, _ := raw.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprint(item))
	}
	return out
}
