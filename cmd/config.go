package cmd

// journalTimeLayout formats timestamps written to the dated log file.
const journalTimeLayout = "2006-01-02 15:04:05 MST"

const (
	defaultNextCount = 3
	maxNextCount     = 52
)

const DESCRIPTION = `
This utility initiates a reboot or shutdown at the specified time.

First argument:         Day of week to act on, an integer with Sunday as day 1.
Second argument:        Number 0 through 23 representing the hour.
Third argument:         Number 0 through 59 representing the minute.
Fourth argument:        -r or /r to reboot. -s or /s to shutdown.
Fifth argument:         Optional minimum uptime in seconds before the
                        schedule is armed, or -1 for unbounded.

A five minute warning is issued before the action. If the target time has
already passed this week when the utility starts, for example after the
machine slept through it, the warning is issued right away.

Examples:
        schedreboot 1 2 0 -r            Reboots on Sunday at 0200.
        schedreboot 7 23 0 -s           Shuts down on Saturday at 2300.
        schedreboot 1 2 0 -r 86400      Reboots on Sunday at 0200 once the
                                        machine has been up for a day.
`

const NextDescription = `The next command shows when a schedule would fire if it
were started now, along with its cron expression and the
next weekly occurrences.

Example:
        schedreboot next 1 2 0
        schedreboot next --count 5 7 23 0

`
