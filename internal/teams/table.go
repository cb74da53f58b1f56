package teams

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints p as a borderless two-column table, one row per member.
func RenderTable(w io.Writer, p Partition) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group ID", "Member Name"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, team := range p {
		id := strconv.Itoa(team.ID)
		for _, member := range team.Members {
			table.Append([]string{id, member})
		}
	}
	table.Render()
}
