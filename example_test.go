package mailicons_test

import (
	"fmt"

	"github.com/alnah/go-mailicons"
)

// Example rewrites a newsletter placeholder with the built-in icon table.
func Example() {
	table, err := mailicons.LoadIconTable(mailicons.DefaultTableName, "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rw := mailicons.NewRewriter(table)
	res := rw.Rewrite(`<span class="material-icons" style="font-size:24px;color:#0a7;">favorite</span>`)

	fmt.Println(res.Text)
	fmt.Println(res.Changed, res.Replaced)
	// Output:
	// <img src="assets/images/icons/favorite.svg" alt="favorite" style="width:24px; height:24px; vertical-align:middle; color:#0a7;">
	// true 1
}

// Example_encoded rewrites template source shown on a download page.
func Example_encoded() {
	table, err := mailicons.NewIconTable([]mailicons.IconEntry{
		{Name: "download", Path: "assets/images/icons/download.svg"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rw := mailicons.NewRewriter(table,
		mailicons.WithDialect(mailicons.DialectEncoded),
		mailicons.WithBaseURL("https://zomo-emails.vercel.app"),
	)
	res := rw.Rewrite(`&lt;span class=&quot;material-icons&quot;&gt;download&lt;/span&gt;`)

	fmt.Println(res.Text)
	// Output:
	// &lt;img src=&quot;https://zomo-emails.vercel.app/assets/images/icons/download.svg&quot; alt=&quot;download&quot; style=&quot;width:16px; height:16px; vertical-align:middle; color:currentColor;&quot;&gt;
}

// Example_unknownIcons shows that unknown icons are reported, not replaced.
func Example_unknownIcons() {
	table, _ := mailicons.NewIconTable([]mailicons.IconEntry{
		{Name: "person", Path: "icons/person.svg"},
	})

	res := mailicons.NewRewriter(table).Rewrite(`<span class="material-icons">rocket</span>`)

	fmt.Println(res.Changed, res.Unknown)
	// Output: false [rocket]
}

// ExampleRewriteSrcPrefix points local icon paths at a deployed site.
func ExampleRewriteSrcPrefix() {
	res := mailicons.RewriteSrcPrefix(
		`<img src="assets/images/icons/speed.svg" alt="speed">`,
		"assets/images/icons/",
		"https://zomo-emails.vercel.app/assets/images/icons/",
	)

	fmt.Println(res.Text)
	// Output: <img src="https://zomo-emails.vercel.app/assets/images/icons/speed.svg" alt="speed">
}
