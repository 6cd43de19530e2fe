package corpus

// SalesStrategy is the built-in sales strategy guide served when no corpus
// file is configured.
const SalesStrategy = `
Sales Strategy and Business Development Guide

1. Customer Segmentation
Our target market is divided into three key segments:
- Enterprise (Revenue > $100M): Focus on comprehensive solutions
- Mid-Market ($10M-$100M): Balanced feature set with competitive pricing
- Small Business (<$10M): Streamlined solutions with essential features

2. Sales Approach
The sales process follows these key steps:
• Discovery: Understand customer pain points and needs
• Solution Design: Customize offerings to match requirements
• Proposal: Present value proposition and ROI analysis
• Negotiation: Address concerns and finalize terms
• Closing: Secure commitment and establish next steps

3. Value Proposition
Our competitive advantages include:
- Industry-leading customer support (24/7 availability)
- Flexible integration capabilities
- Scalable pricing model
- Regular feature updates and improvements

4. Account Management
Key account strategies:
• Quarterly business reviews
• Regular check-ins and updates
• Proactive problem resolution
• Growth opportunity identification

5. Sales Best Practices
- Always lead with customer benefits
- Focus on value over price
- Use case studies and testimonials
- Follow up within 24 hours
- Document all customer interactions

6. Revenue Targets
Annual growth objectives:
• New business: 40% of revenue
• Existing account expansion: 30%
• Renewal rate target: 90%
• Average deal size: $50,000
`
