package prefs

const GroupedTermsHelp = `## Grouped search terms

A grouped search term is a search name that searches several columns at
once. Create a term named ` + "`myseries`" + ` with the value
` + "`series, #myseries, #myseries2`" + ` and the query ` + "`myseries:adhoc`" + `
finds *adhoc* in any of the columns ` + "`series`" + `, ` + "`#myseries`" + ` and
` + "`#myseries2`" + `.

Pick or type the name, list the columns in the value box, then save.

* A term cannot reuse the name of an existing column, search term or user category.
* Names are lower-cased: ` + "`MySearch`" + ` and ` + "`mysearch`" + ` are the same term.
`

const UserCategoryHelp = `## User categories from grouped terms

List grouped search term names here to generate a user category for each.
The category holds every item of every column in the group, so with the
` + "`myseries`" + ` example it shows all series found in ` + "`series`" + `,
` + "`#myseries`" + ` and ` + "`#myseries2`" + `. Handy for spotting duplicates or
finding which column holds an item.
`
